package renderer

import (
	"strings"
	"testing"

	"github.com/pauligwe/tradeoff"
)

func sampleReport() *tradeoff.Report {
	return tradeoff.NewReport([]tradeoff.Position{
		{Ticker: "NVDA", Name: "NVIDIA Corp", Sector: "Technology", Industry: "Semiconductors", Value: 62000},
		{Ticker: "MSFT", Name: "Microsoft", Sector: "Technology", Value: 19000},
		{Ticker: "KO", Name: "Coca-Cola", Sector: "Consumer Defensive", Value: 19000},
	}, tradeoff.DefaultRegistry())
}

func TestRiskMarkdown(t *testing.T) {
	md := RiskMarkdown(NewReportView(sampleReport()))

	for _, want := range []string{
		"# Portfolio Risk Report",
		"$100,000.00",
		"NVDA (62.00%)",
		"critical",
		"## Classification",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report markdown missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("template error leaked into output:\n%s", md)
	}
}

func TestRiskMarkdownEmptyPortfolio(t *testing.T) {
	rep := tradeoff.NewReport(nil, tradeoff.DefaultRegistry())
	md := RiskMarkdown(NewReportView(rep))
	if !strings.Contains(md, "No risk factor reached its alert threshold") {
		t.Errorf("empty report missing the no-alerts line:\n%s", md)
	}
}

func TestImportMarkdown(t *testing.T) {
	res := tradeoff.ImportHoldings("Symbol,Shares\nNVDA,50\nNVDA,25\nMSFT,30\n", "")
	md := ImportMarkdown(NewImportView(res))

	for _, want := range []string{"generic", "| NVDA | 75 |", "| MSFT | 30 |", "3 rows read"} {
		if !strings.Contains(md, want) {
			t.Errorf("import markdown missing %q in:\n%s", want, md)
		}
	}
}

func TestImportMarkdownWarnings(t *testing.T) {
	res := tradeoff.ImportHoldings("Name,Amount\nApple,100\n", "")
	md := ImportMarkdown(NewImportView(res))
	if !strings.Contains(md, "## Warnings") {
		t.Errorf("import markdown missing warnings section:\n%s", md)
	}
	if !strings.Contains(md, "No holdings could be imported") {
		t.Errorf("import markdown missing empty-holdings line:\n%s", md)
	}
}

func TestClassificationMarkdown(t *testing.T) {
	c := tradeoff.Classify(tradeoff.Metrics{
		SectorConcentration: 75, TopHoldingWeight: 18, NumHoldings: 6, TechExposure: 10,
	})
	md := ClassificationMarkdown(NewClassificationView(c))
	if !strings.Contains(md, "aggressive") || !strings.Contains(md, "83") {
		t.Errorf("classification markdown missing profile or confidence:\n%s", md)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[string]string{
		"0.00":        "0.00",
		"999.10":      "999.10",
		"1000.00":     "1,000.00",
		"1234567.89":  "1,234,567.89",
		"-1234567.89": "-1,234,567.89",
		"123":         "123",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}
