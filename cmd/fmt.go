package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal.
// On rendering errors it falls back to the raw markdown.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
