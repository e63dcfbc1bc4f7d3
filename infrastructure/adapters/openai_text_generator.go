package adapters

import (
	"context"
	"errors"
	"github.com/sashabaranov/go-openai"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/config"
	"rapper-ai/domain"
)

const openAIProvider = "openai"

type openAITextGenerator struct {
	logger       outbound.LoggerPort
	client       *openai.Client
	openAIConfig *config.OpenAIConfig
}

func NewOpenAITextGenerator(openAIConfig *config.OpenAIConfig, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	clientConfig := openai.DefaultConfig(openAIConfig.ApiKey)
	if openAIConfig.ApiUrl != "" {
		clientConfig.BaseURL = openAIConfig.ApiUrl
	}

	return &openAITextGenerator{
		logger:       logger,
		client:       openai.NewClientWithConfig(clientConfig),
		openAIConfig: openAIConfig,
	}
}

func (o *openAITextGenerator) Generate(ctx context.Context, req outbound.GenerateTextRequest) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.openAIConfig.Model,
		MaxTokens: o.openAIConfig.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		o.logger.ErrorWithFields(err, "Chat completion request failed", map[string]interface{}{
			"model": o.openAIConfig.Model,
		})
		return "", toProviderError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domain.ErrNoContent
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *openAITextGenerator) Provider() string {
	return openAIProvider
}

func toProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &domain.ProviderError{Provider: openAIProvider, StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &domain.ProviderError{Provider: openAIProvider, StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error(), Err: err}
	}

	return &domain.ProviderError{Provider: openAIProvider, Message: err.Error(), Err: err}
}
