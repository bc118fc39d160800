package tradeoff

// Snapshot is an immutable view of a portfolio at analysis time: positions
// with computed weights, per-sector weights, and the largest position. It is
// recomputed fresh for every analysis call and never cached.
type Snapshot struct {
	TotalValue    float64
	Positions     []Position
	SectorWeights map[string]Percent
	Largest       PositionWeight
}

// PositionWeight names a position and its share of total value.
type PositionWeight struct {
	Ticker string
	Weight Percent
}

// NewSnapshot builds a snapshot from enriched positions, computing each
// position's weight, the per-sector weights (including the Unknown bucket;
// consumers that must exclude it do so themselves) and the largest position.
// Positions with a non-positive value are ignored.
func NewSnapshot(positions []Position) *Snapshot {
	s := &Snapshot{SectorWeights: make(map[string]Percent)}

	for _, p := range positions {
		if p.Value <= 0 {
			continue
		}
		s.TotalValue += p.Value
		s.Positions = append(s.Positions, p)
	}
	if s.TotalValue == 0 {
		return s
	}

	for i := range s.Positions {
		p := &s.Positions[i]
		p.Weight = Percent(100 * p.Value / s.TotalValue)

		sector := p.Sector
		if sector == "" {
			sector = UnknownSector
		}
		s.SectorWeights[sector] += p.Weight

		if p.Weight > s.Largest.Weight {
			s.Largest = PositionWeight{Ticker: p.Ticker, Weight: p.Weight}
		}
	}
	return s
}

// TopKnownSector returns the known sector with the largest weight, skipping
// the Unknown bucket, along with the tickers contributing to it. ok is false
// when every position's sector is unknown.
func (s *Snapshot) TopKnownSector() (sector string, weight Percent, tickers []string, ok bool) {
	for name, w := range s.SectorWeights {
		if name == UnknownSector {
			continue
		}
		if !ok || w > weight || (w == weight && name < sector) {
			sector, weight, ok = name, w, true
		}
	}
	if !ok {
		return "", 0, nil, false
	}
	for _, p := range s.Positions {
		if p.Sector == sector {
			tickers = append(tickers, p.Ticker)
		}
	}
	return sector, weight, tickers, true
}

// Metrics derives the aggregate metrics consumed by the archetype
// classifier. Sector concentration is the top known sector's weight; tech
// exposure is the Technology sector's weight.
func (s *Snapshot) Metrics() Metrics {
	_, topWeight, _, _ := s.TopKnownSector()
	return Metrics{
		SectorConcentration: float64(topWeight),
		TopHoldingWeight:    float64(s.Largest.Weight),
		NumHoldings:         len(s.Positions),
		TechExposure:        float64(s.SectorWeights["Technology"]),
	}
}
