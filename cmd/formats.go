package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff"
)

type formatsCmd struct{}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list the supported broker formats" }
func (*formatsCmd) Usage() string {
	return `tro formats

  Lists the broker export formats the importer recognizes, in detection
  order, with the header patterns that identify each one.
`
}

func (*formatsCmd) SetFlags(_ *flag.FlagSet) {}

func (*formatsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	b.WriteString("# Broker Formats\n\n")
	b.WriteString("| Format | Detected by |\n|---|---|\n")
	for _, p := range tradeoff.Formats {
		detect := strings.Join(p.DetectPatterns, ", ")
		if p.Name == tradeoff.GenericFormat {
			detect = "fallback when nothing else matches"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", p.Name, detect)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
