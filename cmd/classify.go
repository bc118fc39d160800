package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff"
	"github.com/pauligwe/tradeoff/renderer"
)

type classifyCmd struct {
	sector float64
	top    float64
	count  int
	tech   float64
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify a portfolio into an investor archetype" }
func (*classifyCmd) Usage() string {
	return `tro classify -sector <pct> -top <pct> -count <n> [-tech <pct>]

  Classifies a portfolio from its concentration metrics, without needing the
  holdings themselves: top sector weight, largest holding weight, number of
  holdings and technology exposure, all in percent of total value.

Usage Examples:
# A concentrated tech portfolio.
$ tro classify -sector 66 -top 18 -count 8 -tech 66

`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.sector, "sector", 0, "Weight of the heaviest sector, in percent.")
	f.Float64Var(&c.top, "top", 0, "Weight of the largest holding, in percent.")
	f.IntVar(&c.count, "count", 0, "Number of holdings.")
	f.Float64Var(&c.tech, "tech", 0, "Technology sector exposure, in percent.")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -count must be a positive number of holdings")
		return subcommands.ExitUsageError
	}
	for _, pct := range []float64{c.sector, c.top, c.tech} {
		if pct < 0 || pct > 100 {
			fmt.Fprintln(os.Stderr, "Error: percentages must be between 0 and 100")
			return subcommands.ExitUsageError
		}
	}

	classification := tradeoff.Classify(tradeoff.Metrics{
		SectorConcentration: c.sector,
		TopHoldingWeight:    c.top,
		NumHoldings:         c.count,
		TechExposure:        c.tech,
	})

	printMarkdown(renderer.ClassificationMarkdown(renderer.NewClassificationView(classification)))
	return subcommands.ExitSuccess
}
