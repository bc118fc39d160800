package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff/agent"
	"github.com/pauligwe/tradeoff/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI hedging assistant.
type assistCmd struct {
	file    string
	format  string
	offline bool
}

// Name returns the name of the command.
func (*assistCmd) Name() string { return "assist" }

// Synopsis returns a short-one line synopsis of the command.
func (*assistCmd) Synopsis() string {
	return "Start an interactive hedging session grounded in the risk report."
}

// Usage returns a long-form usage string.
func (*assistCmd) Usage() string {
	return `tro assist [-file <path>] [-format <name>] [-offline] [question...]

  Builds the risk report for a holdings export and starts an interactive
  session with the hedging assistant, grounded in that report. Requires
  GEMINI_API_KEY (environment or .env file). Type 'bye' to leave.
`
}

// SetFlags sets the flags for the command.
func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Holdings export to read. Reads stdin by default.")
	f.StringVar(&c.format, "format", "", "Broker format name. Autodetects by default.")
	f.BoolVar(&c.offline, "offline", false, "Skip EODHD enrichment and value positions from the export.")
}

// Execute executes the command.
func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	rep, warnings, err := loadReport(c.file, c.format, c.offline)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	riskReport := renderer.RiskMarkdown(renderer.NewReportView(rep))
	a := agent.New(os.Stdout, os.Stdin, riskReport)

	var prompts []string
	if initialPrompt != "" {
		prompts = append(prompts, initialPrompt)
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
