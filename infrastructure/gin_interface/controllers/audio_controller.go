package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"rapper-ai/application/ports/inbound"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/domain"
	"rapper-ai/infrastructure/gin_interface/dto"
)

type AudioController interface {
	GenerateAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type audioController struct {
	logger         outbound.LoggerPort
	audioRequester inbound.AudioRequesterPort
}

func NewAudioController(logger outbound.LoggerPort, audioRequester inbound.AudioRequesterPort) AudioController {
	return &audioController{
		logger:         logger,
		audioRequester: audioRequester,
	}
}

func (a *audioController) GenerateAudio(c *gin.Context) {
	var generateAudioRequest dto.GenerateAudioRequest
	if err := c.ShouldBindJSON(&generateAudioRequest); err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Text is required"})
		return
	}

	audio, err := a.audioRequester.Generate(c.Request.Context(), inbound.GenerateAudioParams{
		Text:      generateAudioRequest.Text,
		PersonaID: generateAudioRequest.Voice,
	})
	if err != nil {
		_ = c.Error(err)
		if domain.IsValidationError(err) {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate audio"})
		return
	}

	defer func() {
		if err := audio.Close(); err != nil {
			a.logger.Error(err, "Failed to close audio stream")
		}
	}()

	c.DataFromReader(http.StatusOK, -1, domain.AudioMediaType, audio, nil)
}

func (a *audioController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/generate-audio", a.GenerateAudio)
}
