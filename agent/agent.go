// Package agent implements the AI hedge assistant: an interactive chat
// session seeded with the portfolio's risk report, whose job is to turn the
// triggered alerts' hedge keywords into concrete hedge ideas. It is a
// collaborator of the core, never a dependency of it.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w      io.Writer
	r      *bufio.Reader
	Hedger *Expert
}

// New creates a new Agent around a hedge expert seeded with the given risk
// report (rendered markdown). It takes an io.Writer for the agent's output
// (e.g. os.Stdout) and an io.Reader for user input (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, riskReport string) *Agent {
	return &Agent{
		w:      w,
		r:      bufio.NewReader(r),
		Hedger: newHedger(riskReport),
	}
}

const prompt = "hedge> "

// Run starts the interactive REPL session for the agent. Any prompts given
// up front are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Hedger.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to the tradeoff hedge assistant. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
			input = strings.TrimSpace(input)
		}

		if input == "" {
			continue
		}
		if strings.EqualFold(input, "bye") {
			fmt.Fprintln(a.w, "bye")
			return nil
		}

		content, err := a.Hedger.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			fmt.Fprintf(a.w, "error: %v\n", err)
			continue
		}
		for _, part := range content.Parts {
			if part.Text != "" {
				fmt.Fprintln(a.w, part.Text)
			}
		}
	}
}
