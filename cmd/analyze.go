package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff"
	"github.com/pauligwe/tradeoff/eodhd"
	"github.com/pauligwe/tradeoff/renderer"
)

type analyzeCmd struct {
	file    string
	format  string
	offline bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "score a holdings export against the risk factors" }
func (*analyzeCmd) Usage() string {
	return `tro analyze [-file <path>] [-format <name>] [-offline]

  Imports a holdings export, enriches it with live prices and sector data
  from EODHD, evaluates the risk factor registry against the resulting
  snapshot, and prints the risk report with the archetype classification.

  Enrichment requires EODHD_API_KEY (environment or .env file). With
  -offline, valuation falls back to the prices and market values present
  in the export itself.

Usage Examples:
# Full report with live enrichment.
$ tro analyze -file positions.csv

# Offline report from the export's own values.
$ tro analyze -file positions.csv -offline

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Holdings export to read. Reads stdin by default.")
	f.StringVar(&c.format, "format", "", "Broker format name. Autodetects by default.")
	f.BoolVar(&c.offline, "offline", false, "Skip EODHD enrichment and value positions from the export.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rep, warnings, err := loadReport(c.file, c.format, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	printMarkdown(renderer.RiskMarkdown(renderer.NewReportView(rep)))
	return subcommands.ExitSuccess
}

// loadReport imports a holdings export, values its positions and evaluates
// the default risk registry. It is shared by 'analyze' and 'assist'.
func loadReport(file, format string, offline bool) (*tradeoff.Report, []string, error) {
	raw, err := readInput(file)
	if err != nil {
		return nil, nil, err
	}

	res := tradeoff.ImportHoldings(raw, format)
	if len(res.Holdings) == 0 {
		return nil, nil, fmt.Errorf("no holdings could be parsed from the input: %v", res.Warnings)
	}
	warnings := res.Warnings

	apiKey := os.Getenv("EODHD_API_KEY")
	if !offline && apiKey == "" {
		warnings = append(warnings, "EODHD_API_KEY is not set, valuing positions from the export")
		offline = true
	}

	var positions []tradeoff.Position
	if offline {
		positions = tradeoff.PositionsFromHoldings(res.Holdings)
	} else {
		var enrichWarnings []string
		positions, enrichWarnings = eodhd.New(apiKey).Enrich(res.Holdings)
		warnings = append(warnings, enrichWarnings...)
	}
	if len(positions) == 0 {
		return nil, warnings, fmt.Errorf("no position could be valued; check the export or enrichment access")
	}

	return tradeoff.NewReport(positions, tradeoff.DefaultRegistry()), warnings, nil
}
