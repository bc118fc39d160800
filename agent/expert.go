package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a specialized assistant.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	chat        *genai.Chat
}

// newHedger builds the hedge expert. The risk report goes into the system
// instruction so every answer is grounded in the portfolio actually
// analyzed, and Google Search is enabled so hedge ideas can reference
// current listings rather than stale training data.
func newHedger(riskReport string) *Expert {
	return &Expert{
		Name:        "Hedger",
		Description: "Suggests concrete hedges for the portfolio's triggered risk alerts.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a portfolio hedging assistant. Below is a deterministic risk
			report for the user's portfolio, including triggered risk alerts and
			their hedge search keywords.

			When the user asks for hedges, work from the alerts: for each one
			they care about, use the hedge keywords to search for instruments or
			event markets that would pay off if the risk materializes, and
			explain the reasoning and sizing trade-offs plainly. Never invent
			positions the report does not contain. You give research, not
			financial advice, and you say so when asked for advice.

			` + riskReport}}},
		},
	}
}

// Start creates the underlying chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}
