package tradeoff

import "testing"

func TestNewSnapshotWeights(t *testing.T) {
	s := NewSnapshot([]Position{
		{Ticker: "NVDA", Sector: "Technology", Value: 6000},
		{Ticker: "MSFT", Sector: "Technology", Value: 2000},
		{Ticker: "JNJ", Sector: "Healthcare", Value: 2000},
	})

	if s.TotalValue != 10000 {
		t.Errorf("TotalValue = %v, want 10000", s.TotalValue)
	}
	if !s.Positions[0].Weight.Equal(60) {
		t.Errorf("NVDA weight = %v, want 60", s.Positions[0].Weight)
	}
	if s.Largest.Ticker != "NVDA" || !s.Largest.Weight.Equal(60) {
		t.Errorf("Largest = %+v, want NVDA at 60%%", s.Largest)
	}
	if !s.SectorWeights["Technology"].Equal(80) {
		t.Errorf("Technology weight = %v, want 80", s.SectorWeights["Technology"])
	}
	if !s.SectorWeights["Healthcare"].Equal(20) {
		t.Errorf("Healthcare weight = %v, want 20", s.SectorWeights["Healthcare"])
	}
}

func TestNewSnapshotIgnoresWorthlessPositions(t *testing.T) {
	s := NewSnapshot([]Position{
		{Ticker: "NVDA", Value: 100},
		{Ticker: "XXII", Value: 0},
		{Ticker: "YTEN", Value: -5},
	})
	if len(s.Positions) != 1 {
		t.Errorf("got %d positions, want 1", len(s.Positions))
	}
}

func TestTopKnownSectorExcludesUnknown(t *testing.T) {
	s := NewSnapshot([]Position{
		{Ticker: "AAA", Sector: UnknownSector, Value: 7000},
		{Ticker: "BBB", Sector: "Healthcare", Value: 2000},
		{Ticker: "CCC", Sector: "Healthcare", Value: 1000},
	})

	sector, weight, tickers, ok := s.TopKnownSector()
	if !ok {
		t.Fatal("TopKnownSector() not ok")
	}
	if sector != "Healthcare" || !weight.Equal(30) {
		t.Errorf("top sector = %s at %v, want Healthcare at 30", sector, weight)
	}
	if len(tickers) != 2 {
		t.Errorf("tickers = %v, want BBB and CCC", tickers)
	}
}

func TestTopKnownSectorAllUnknown(t *testing.T) {
	s := NewSnapshot([]Position{
		{Ticker: "AAA", Sector: UnknownSector, Value: 100},
		{Ticker: "BBB", Sector: "", Value: 100},
	})
	if _, _, _, ok := s.TopKnownSector(); ok {
		t.Error("TopKnownSector() ok on all-unknown portfolio")
	}
}

func TestSnapshotMetrics(t *testing.T) {
	s := NewSnapshot([]Position{
		{Ticker: "NVDA", Sector: "Technology", Value: 5000},
		{Ticker: "MSFT", Sector: "Technology", Value: 2000},
		{Ticker: "JNJ", Sector: "Healthcare", Value: 3000},
	})
	m := s.Metrics()
	if m.SectorConcentration != 70 || m.TechExposure != 70 {
		t.Errorf("sector/tech = %v/%v, want 70/70", m.SectorConcentration, m.TechExposure)
	}
	if m.TopHoldingWeight != 50 || m.NumHoldings != 3 {
		t.Errorf("top/count = %v/%v, want 50/3", m.TopHoldingWeight, m.NumHoldings)
	}
}

func TestPositionsFromHoldings(t *testing.T) {
	positions := PositionsFromHoldings([]Holding{
		{Ticker: "NVDA", Shares: Q(10), CurrentValue: M(1000, "USD")},
		{Ticker: "AAPL", Shares: Q(5), AveragePrice: M(200, "USD")}, // value from shares*price
		{Ticker: "GME", Shares: Q(3)},                               // no way to value it
	})
	if len(positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(positions))
	}
	if positions[1].Value != 1000 {
		t.Errorf("AAPL value = %v, want 1000", positions[1].Value)
	}
	if positions[0].Sector != UnknownSector {
		t.Errorf("sector = %q, want %q", positions[0].Sector, UnknownSector)
	}
}
