package mock

import (
	"context"
	"rapper-ai/application/ports/outbound"
	"sync"
)

// TextGenerator is an in-memory outbound.TextGeneratorPort that records every
// request it receives.
type TextGenerator struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls []outbound.GenerateTextRequest
}

func NewTextGenerator(text string, err error) *TextGenerator {
	return &TextGenerator{Text: text, Err: err}
}

func (g *TextGenerator) Generate(ctx context.Context, req outbound.GenerateTextRequest) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.Err != nil {
		return "", g.Err
	}
	return g.Text, nil
}

func (g *TextGenerator) Provider() string {
	return "mock"
}

func (g *TextGenerator) Calls() []outbound.GenerateTextRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	calls := make([]outbound.GenerateTextRequest, len(g.calls))
	copy(calls, g.calls)
	return calls
}
