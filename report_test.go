package tradeoff

import "testing"

func TestNewReport(t *testing.T) {
	positions := []Position{
		{Ticker: "NVDA", Name: "NVIDIA Corp", Sector: "Technology", Industry: "Semiconductors", Value: 62000},
		{Ticker: "MSFT", Name: "Microsoft", Sector: "Technology", Value: 19000},
		{Ticker: "KO", Name: "Coca-Cola", Sector: "Consumer Defensive", Value: 19000},
	}
	rep := NewReport(positions, DefaultRegistry())

	if rep.Snapshot.TotalValue != 100000 {
		t.Errorf("total value = %v, want 100000", rep.Snapshot.TotalValue)
	}
	if rep.WorstSeverity() != SeverityCritical {
		t.Errorf("worst severity = %s, want critical", rep.WorstSeverity())
	}
	if rep.Classification.Profile == "" {
		t.Error("classification missing")
	}
	if len(rep.HedgeKeywords()) == 0 {
		t.Error("no hedge keywords collected")
	}
}

func TestReportHedgeKeywordsDeduplicated(t *testing.T) {
	rep := &Report{Alerts: []Alert{
		{HedgeKeywords: []string{"taiwan", "chips"}},
		{HedgeKeywords: []string{"taiwan", "tariffs"}},
	}}
	got := rep.HedgeKeywords()
	want := []string{"taiwan", "chips", "tariffs"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keywords[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReportEmptyPortfolio(t *testing.T) {
	rep := NewReport(nil, DefaultRegistry())
	if rep.WorstSeverity() != "" {
		t.Errorf("worst severity = %q, want empty", rep.WorstSeverity())
	}
	if len(rep.Alerts) != 0 {
		t.Errorf("alerts = %v, want none", rep.Alerts)
	}
}
