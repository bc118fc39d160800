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

type importCmd struct {
	file   string
	format string
	csv    bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a broker holdings export" }
func (*importCmd) Usage() string {
	return `tro import [-file <path>] [-format <name>] [-csv]

  Parses a holdings export from a broker (file or stdin), detects its format,
  and normalizes it into canonical holdings. Prints an import summary, or the
  canonical "Symbol,Shares" CSV with -csv.

Usage Examples:
# Import a Schwab export and show the summary.
$ tro import -file positions.csv

# Pipe a clipboard export into the canonical form.
$ pbpaste | tro import -csv

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Holdings export to read. Reads stdin by default.")
	f.StringVar(&c.format, "format", "", "Broker format name. Autodetects by default.")
	f.BoolVar(&c.csv, "csv", false, "Print the canonical Symbol,Shares CSV instead of the summary.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	raw, err := readInput(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := tradeoff.ImportHoldings(raw, c.format)
	if len(res.Holdings) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no holdings could be parsed from the input")
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "  %s\n", w)
		}
		return subcommands.ExitFailure
	}

	if c.csv {
		fmt.Print(tradeoff.HoldingsCSV(res.Holdings))
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ImportMarkdown(renderer.NewImportView(res)))
	return subcommands.ExitSuccess
}
