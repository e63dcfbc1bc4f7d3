package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/config"
	"rapper-ai/domain"
	"strings"
)

const elevenLabsProvider = "elevenlabs"

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id,omitempty"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type audioGenerator struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewAudioGenerator(elevenLabsConfig *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &audioGenerator{
		ContentFetcher:   NewContentFetcher(logger, elevenLabsProvider),
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (a *audioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) (io.ReadCloser, error) {
	httpReq, err := a.getRequest(ctx, req.Text, req.VoiceID)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio fetching", map[string]interface{}{
			"voice": req.VoiceID,
		})
		return nil, err
	}

	return a.StreamContent(httpReq)
}

func (a *audioGenerator) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: a.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       a.elevenLabsConfig.Stability,
			SimilarityBoost: a.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(a.elevenLabsConfig.ApiUrl, "/") + "/v1/text-to-speech/" + url.PathEscape(voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       domain.AudioMediaType,
		"xi-api-key":   a.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Set(key, value)
	}

	return req, nil
}
