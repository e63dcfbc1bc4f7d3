package outbound

import "context"

type GenerateTextRequest struct {
	Prompt string
}

// TextGeneratorPort sends a single user-role instruction to a
// text-generation provider and returns the first text segment of the reply.
// Implementations return domain.ErrNoContent when the reply has no text and
// *domain.ProviderError when the provider call fails.
type TextGeneratorPort interface {
	Generate(ctx context.Context, req GenerateTextRequest) (string, error)
	Provider() string
}
