package adapters

import (
	"encoding/json"
	"io"
	"net/http"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/domain"
	"strings"
)

// maxErrorBodySize bounds how much of a failed response is read for
// diagnostics.
const maxErrorBodySize = 64 << 10

type ContentFetcher interface {
	// FetchContent returns the full body of a successful response.
	FetchContent(req *http.Request) ([]byte, error)
	// StreamContent returns the body of a successful response unread. The
	// caller must close it.
	StreamContent(req *http.Request) (io.ReadCloser, error)
}

type contentFetcher struct {
	logger   outbound.LoggerPort
	client   *http.Client
	provider string
}

func NewContentFetcher(logger outbound.LoggerPort, provider string) ContentFetcher {
	return &contentFetcher{
		logger:   logger,
		client:   &http.Client{},
		provider: provider,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	body, err := c.StreamContent(req)
	if err != nil {
		return nil, err
	}

	defer c.closeBody(req, body)

	payload, err := io.ReadAll(body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"provider": c.provider,
			"method":   req.Method,
			"URL":      req.URL.String(),
		})
		return nil, &domain.ProviderError{Provider: c.provider, Message: err.Error(), Err: err}
	}

	return payload, nil
}

func (c *contentFetcher) StreamContent(req *http.Request) (io.ReadCloser, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"provider": c.provider,
			"method":   req.Method,
			"URL":      req.URL.String(),
		})
		return nil, &domain.ProviderError{Provider: c.provider, Message: err.Error(), Err: err}
	}

	if res.StatusCode != http.StatusOK {
		defer c.closeBody(req, res.Body)

		bodyPayload, readErr := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		message := extractProviderMessage(bodyPayload, res.Status)
		c.logger.ErrorWithFields(readErr, "HTTP request returned non-OK status code", map[string]interface{}{
			"provider": c.provider,
			"method":   req.Method,
			"URL":      req.URL.String(),
			"status":   res.StatusCode,
			"message":  message,
		})
		return nil, &domain.ProviderError{Provider: c.provider, StatusCode: res.StatusCode, Message: message}
	}

	return res.Body, nil
}

func (c *contentFetcher) closeBody(req *http.Request, body io.Closer) {
	err := body.Close()
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
			"provider": c.provider,
			"method":   req.Method,
			"URL":      req.URL.String(),
		})
	}
}

type providerErrorBody struct {
	Error  json.RawMessage `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// extractProviderMessage pulls the human-readable message out of the error
// shapes used by the supported providers, e.g. {"error":{"message":"..."}}
// or {"detail":{"message":"..."}}. It falls back to the raw body and then to
// the HTTP status line.
func extractProviderMessage(body []byte, status string) string {
	var parsed providerErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if message := messageFromField(parsed.Error); message != "" {
			return message
		}
		if message := messageFromField(parsed.Detail); message != "" {
			return message
		}
	}

	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return status
}

func messageFromField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var object struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &object); err == nil {
		return object.Message
	}
	return ""
}
