package tradeoff

// UnknownSector is the bucket for positions whose sector could not be
// resolved by enrichment. Structural sector-concentration checks exclude it,
// since "we don't know" clustering is not a real concentration.
const UnknownSector = "Unknown"

// Position is a holding enriched with market data: the input of every
// analysis. Enrichment (price, sector, industry lookups) happens outside the
// core, in the eodhd subpackage or by the caller; the core only requires
// that Value is populated.
type Position struct {
	Ticker   string
	Name     string // display name, used for keyword trigger matching
	Sector   string // UnknownSector when unresolved
	Industry string
	Shares   float64
	Value    float64 // market value, in the portfolio's reporting currency

	// Weight is the position's share of total portfolio value, computed by
	// NewSnapshot. Zero until then.
	Weight Percent
}

// PositionsFromHoldings converts ingested holdings that already carry a
// current value (or a price) into analysis positions, without external
// enrichment. Sector and industry are unknown. Holdings with no way to
// compute a value are dropped.
func PositionsFromHoldings(holdings []Holding) []Position {
	var positions []Position
	for _, h := range holdings {
		value := h.CurrentValue
		if value.IsZero() && !h.AveragePrice.IsZero() {
			value = h.AveragePrice.Mul(h.Shares)
		}
		if !value.IsPositive() {
			continue
		}
		positions = append(positions, Position{
			Ticker: h.Ticker,
			Name:   h.Ticker,
			Sector: UnknownSector,
			Shares: h.Shares.AsFloat(),
			Value:  value.AsFloat(),
		})
	}
	return positions
}
