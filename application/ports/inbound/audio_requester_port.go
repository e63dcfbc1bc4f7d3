package inbound

import (
	"context"
	"io"
)

type GenerateAudioParams struct {
	Text      string
	PersonaID string
}

type AudioRequesterPort interface {
	Generate(ctx context.Context, params GenerateAudioParams) (io.ReadCloser, error)
}
