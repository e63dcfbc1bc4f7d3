package services

import (
	"context"
	"fmt"
	"io"
	"rapper-ai/application/ports/inbound"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/domain"
	"strings"
)

type audioRequester struct {
	logger         outbound.LoggerPort
	audioGenerator outbound.AudioGeneratorPort
	personas       *domain.PersonaCatalog
	workerPool     outbound.TaskDispatcher
}

func NewAudioRequester(logger outbound.LoggerPort, audioGenerator outbound.AudioGeneratorPort,
	personas *domain.PersonaCatalog, workerPool outbound.TaskDispatcher) inbound.AudioRequesterPort {
	return &audioRequester{
		logger:         logger,
		audioGenerator: audioGenerator,
		personas:       personas,
		workerPool:     workerPool,
	}
}

func (a *audioRequester) Generate(ctx context.Context, params inbound.GenerateAudioParams) (io.ReadCloser, error) {
	if strings.TrimSpace(params.Text) == "" {
		return nil, domain.NewValidationError("Text is required")
	}

	persona := a.personas.Resolve(params.PersonaID)

	a.logger.DebugWithFields("Requesting audio", map[string]interface{}{
		"persona": persona.ID,
		"voice":   persona.VoiceID,
		"known":   a.personas.Known(params.PersonaID),
	})

	audio, err := dispatch(ctx, a.workerPool, func() (io.ReadCloser, error) {
		return a.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{
			Text:    params.Text,
			VoiceID: persona.VoiceID,
		})
	}, a.release)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to generate audio", map[string]interface{}{
			"persona": persona.ID,
			"voice":   persona.VoiceID,
		})
		return nil, fmt.Errorf("failed to generate audio; %w", err)
	}

	return audio, nil
}

func (a *audioRequester) release(audio io.ReadCloser) {
	if audio == nil {
		return
	}
	if err := audio.Close(); err != nil {
		a.logger.Error(err, "Failed to close abandoned audio stream")
	}
}
