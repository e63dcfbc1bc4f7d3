package inbound

import "context"

type GenerateVerseParams struct {
	Topic     string
	PersonaID string
}

type VerseRequesterPort interface {
	Generate(ctx context.Context, params GenerateVerseParams) (string, error)
}
