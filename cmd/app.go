// Package cmd implements the CLI application to import and analyze portfolios.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	// .env carries EODHD_API_KEY and GEMINI_API_KEY for the commands that need them.
	godotenv.Load()

	c.Register(&importCmd{}, "portfolio")
	c.Register(&analyzeCmd{}, "portfolio")
	c.Register(&classifyCmd{}, "portfolio")

	c.Register(&formatsCmd{}, "reference")
	c.Register(&factorsCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")

	c.Register(&assistCmd{}, "assistant")
}

// readInput reads the holdings export from the given file, or from stdin when
// the file name is empty.
func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", file, err)
	}
	return string(data), nil
}
