package mock

import (
	"bytes"
	"context"
	"io"
	"rapper-ai/application/ports/outbound"
	"sync"
)

// AudioGenerator is an in-memory outbound.AudioGeneratorPort returning a fixed
// payload.
type AudioGenerator struct {
	Payload []byte
	Err     error

	mu    sync.Mutex
	calls []outbound.GenerateAudioRequest
}

func NewAudioGenerator(payload []byte, err error) *AudioGenerator {
	return &AudioGenerator{Payload: payload, Err: err}
}

func (g *AudioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) (io.ReadCloser, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.Err != nil {
		return nil, g.Err
	}
	return io.NopCloser(bytes.NewReader(g.Payload)), nil
}

func (g *AudioGenerator) Calls() []outbound.GenerateAudioRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	calls := make([]outbound.GenerateAudioRequest, len(g.calls))
	copy(calls, g.calls)
	return calls
}
