package outbound

import (
	"context"
	"io"
)

type GenerateAudioRequest struct {
	Text    string
	VoiceID string
}

// AudioGeneratorPort returns the provider's audio payload as-is. Callers
// must close the returned reader.
type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) (io.ReadCloser, error)
}
