// Command tro imports broker holdings exports, scores them against a risk
// factor registry and classifies the portfolio's archetype.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/pauligwe/tradeoff/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. Complete() exits when invoked by the shell's
	// completion hook, otherwise it is a no-op.
	importFlags := map[string]complete.Predictor{
		"file":   predict.Files("*"),
		"format": predict.Set{"schwab", "fidelity", "vanguard", "robinhood", "etrade", "merrill", "webull", "generic"},
	}
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"import": {Flags: importFlags},
			"analyze": {Flags: map[string]complete.Predictor{
				"file":    predict.Files("*"),
				"format":  importFlags["format"],
				"offline": predict.Nothing,
			}},
			"classify": {Flags: map[string]complete.Predictor{
				"sector": predict.Something,
				"top":    predict.Something,
				"count":  predict.Something,
				"tech":   predict.Something,
			}},
			"formats": {},
			"factors": {},
			"topic":   {Args: predict.Set{"import", "formats", "factors", "archetypes", "*"}},
			"assist": {Flags: map[string]complete.Predictor{
				"file":    predict.Files("*"),
				"format":  importFlags["format"],
				"offline": predict.Nothing,
			}},
		},
	}
	completion.Complete("tro")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
