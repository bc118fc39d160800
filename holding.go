package tradeoff

import "strings"

// Holding is the canonical result of ingesting one or more export rows for
// a single ticker. Tickers are unique within a holdings list; rows for an
// already-seen ticker are merged.
type Holding struct {
	Ticker       string
	Shares       Quantity
	AveragePrice Money // zero when the export had no usable price column
	CurrentValue Money
	CostBasis    Money
	Currency     string
}

// sharesPrecision is the rounding applied to parsed share counts. Fractional
// shares are real, sub-basis-point fractions are export noise.
const sharesPrecision = 4

// tickers that describe cash sweep rows rather than securities.
var nonSecurityMarkers = []string{"CASH", "MONEY MARKET", "PENDING"}

// cleanTicker normalizes a raw ticker cell into a canonical ticker symbol.
// It returns "" when the cell does not describe a tradable security: cash
// and sweep rows, footers, or garbage that survives cleaning.
//
// Normalization: uppercase, strip a leading '*' (Schwab flags reinvestment
// rows with it), drop everything but letters and dots, strip a trailing
// single-letter share-class suffix ("BRK.B" becomes "BRK"). The result must
// be 1-5 characters with at least one letter.
func cleanTicker(cell string) string {
	upper := strings.ToUpper(strings.TrimSpace(cell))
	for _, marker := range nonSecurityMarkers {
		if strings.Contains(upper, marker) {
			return ""
		}
	}

	upper = strings.TrimPrefix(upper, "*")
	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || r == '.' {
			b.WriteRune(r)
		}
	}
	ticker := b.String()

	// trailing ".X" single-letter class suffix
	if n := len(ticker); n >= 2 && ticker[n-2] == '.' {
		ticker = ticker[:n-2]
	}

	if len(ticker) < 1 || len(ticker) > 5 {
		return ""
	}
	hasLetter := false
	for _, r := range ticker {
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return ""
	}
	return ticker
}

// merge folds 'row' into the holding, which must share its ticker.
// Shares sum. The average price recombines as a shares-weighted average when
// both sides have one, otherwise whichever side has a price wins. Current
// value and cost basis are additive. Currency keeps the first non-empty
// source.
func (h *Holding) merge(row Holding) {
	totalShares := h.Shares.Add(row.Shares)

	switch {
	case !h.AveragePrice.IsZero() && !row.AveragePrice.IsZero():
		weighted := h.AveragePrice.Mul(h.Shares).Add(row.AveragePrice.Mul(row.Shares))
		if totalShares.IsPositive() {
			h.AveragePrice = weighted.Div(totalShares)
		}
	case h.AveragePrice.IsZero():
		h.AveragePrice = row.AveragePrice
	}

	h.Shares = totalShares
	h.CurrentValue = h.CurrentValue.Add(row.CurrentValue)
	h.CostBasis = h.CostBasis.Add(row.CostBasis)
	if h.Currency == "" {
		h.Currency = row.Currency
	}
}
