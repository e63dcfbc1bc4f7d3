package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/config"
	"rapper-ai/domain"
	"strings"
)

const anthropicProvider = "anthropic"

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type anthropicTextGenerator struct {
	ContentFetcher
	logger          outbound.LoggerPort
	anthropicConfig *config.AnthropicConfig
}

func NewAnthropicTextGenerator(anthropicConfig *config.AnthropicConfig, logger outbound.LoggerPort) outbound.TextGeneratorPort {
	return &anthropicTextGenerator{
		ContentFetcher:  NewContentFetcher(logger, anthropicProvider),
		logger:          logger,
		anthropicConfig: anthropicConfig,
	}
}

func (a *anthropicTextGenerator) Generate(ctx context.Context, req outbound.GenerateTextRequest) (string, error) {
	httpReq, err := a.getRequest(ctx, req.Prompt)
	if err != nil {
		return "", err
	}

	payload, err := a.FetchContent(httpReq)
	if err != nil {
		return "", err
	}

	var res anthropicResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		a.logger.ErrorWithFields(err, "Failed to unmarshal Anthropic response", map[string]interface{}{
			"size": len(payload),
		})
		return "", domain.ErrNoContent
	}
	if len(res.Content) == 0 || res.Content[0].Text == "" {
		return "", domain.ErrNoContent
	}

	return res.Content[0].Text, nil
}

func (a *anthropicTextGenerator) Provider() string {
	return anthropicProvider
}

func (a *anthropicTextGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := anthropicRequest{
		Model:     a.anthropicConfig.Model,
		MaxTokens: a.anthropicConfig.MaxTokens,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		a.logger.Error(err, "Failed to marshal the request body for Anthropic API")
		return nil, err
	}

	url := strings.TrimRight(a.anthropicConfig.ApiUrl, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonPayload))
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": url,
		})
		return nil, err
	}

	req.Header.Set("x-api-key", a.anthropicConfig.ApiKey)
	req.Header.Set("anthropic-version", a.anthropicConfig.Version)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
