package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/config"
	"rapper-ai/domain"
	"rapper-ai/mock"
	"testing"
)

func newAnthropicTestConfig(serverURL string) *config.AnthropicConfig {
	return &config.AnthropicConfig{
		ApiUrl:    serverURL,
		ApiKey:    "sk-test",
		Model:     "claude-3-haiku-20240307",
		Version:   "2023-06-01",
		MaxTokens: 1000,
	}
}

func TestAnthropicTextGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "claude-3-haiku-20240307", body.Model)
		assert.Equal(t, 1000, body.MaxTokens)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		assert.Equal(t, "write about pizza", body.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","content":[{"type":"text","text":"Yo, pizza"},{"type":"text","text":"ignored"}]}`))
	}))
	defer server.Close()

	generator := NewAnthropicTextGenerator(newAnthropicTestConfig(server.URL), mock.NewLogger())

	text, err := generator.Generate(context.Background(), outbound.GenerateTextRequest{Prompt: "write about pizza"})

	require.NoError(t, err)
	assert.Equal(t, "Yo, pizza", text)
	assert.Equal(t, "anthropic", generator.Provider())
}

func TestAnthropicTextGenerator_Generate_UnexpectedShape(t *testing.T) {
	bodies := []string{
		`{"content":[]}`,
		`{"content":[{"type":"tool_use","id":"x"}]}`,
		`{"unexpected":true}`,
		`not json at all`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		generator := NewAnthropicTextGenerator(newAnthropicTestConfig(server.URL), mock.NewLogger())
		_, err := generator.Generate(context.Background(), outbound.GenerateTextRequest{Prompt: "p"})
		server.Close()

		assert.ErrorIs(t, err, domain.ErrNoContent, body)
	}
}

func TestAnthropicTextGenerator_Generate_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"Internal server error"}}`))
	}))
	defer server.Close()

	generator := NewAnthropicTextGenerator(newAnthropicTestConfig(server.URL), mock.NewLogger())

	_, err := generator.Generate(context.Background(), outbound.GenerateTextRequest{Prompt: "p"})

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "anthropic", providerErr.Provider)
	assert.Equal(t, http.StatusInternalServerError, providerErr.StatusCode)
	assert.Equal(t, "Internal server error", providerErr.Message)
}

func TestAnthropicTextGenerator_Generate_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	generator := NewAnthropicTextGenerator(newAnthropicTestConfig(serverURL), mock.NewLogger())

	_, err := generator.Generate(context.Background(), outbound.GenerateTextRequest{Prompt: "p"})

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Zero(t, providerErr.StatusCode)
	assert.NotEmpty(t, providerErr.Message)
}
