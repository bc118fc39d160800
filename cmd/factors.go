package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff"
)

type factorsCmd struct{}

func (*factorsCmd) Name() string     { return "factors" }
func (*factorsCmd) Synopsis() string { return "list the risk factor registry" }
func (*factorsCmd) Usage() string {
	return `tro factors

  Lists every factor in the risk registry with its category, severity
  thresholds and description.
`
}

func (*factorsCmd) SetFlags(_ *flag.FlagSet) {}

func (*factorsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg := tradeoff.DefaultRegistry()

	var b strings.Builder
	fmt.Fprintf(&b, "# Risk Factors (registry %s)\n\n", reg.Version)
	b.WriteString("| Factor | Category | Low | Medium | High | Critical |\n|---|---|---|---|---|---|\n")
	for _, factor := range reg.Factors {
		t := factor.Thresholds
		fmt.Fprintf(&b, "| %s | %s | %.0f | %.0f | %.0f | %.0f |\n",
			factor.Name, factor.Category, t.Low, t.Medium, t.High, t.Critical)
	}
	b.WriteString("\n")
	for _, factor := range reg.Factors {
		fmt.Fprintf(&b, "**%s** (`%s`): %s\n\n", factor.Name, factor.ID, factor.Description)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
