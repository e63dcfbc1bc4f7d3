package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"rapper-ai/application/ports/inbound"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/domain"
	"rapper-ai/infrastructure/gin_interface/dto"
)

const verseFailureMessage = "Failed to generate rap"

type VerseController interface {
	GenerateVerse(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type verseController struct {
	logger         outbound.LoggerPort
	verseRequester inbound.VerseRequesterPort
}

func NewVerseController(logger outbound.LoggerPort, verseRequester inbound.VerseRequesterPort) VerseController {
	return &verseController{
		logger:         logger,
		verseRequester: verseRequester,
	}
}

func (v *verseController) GenerateVerse(c *gin.Context) {
	var generateVerseRequest dto.GenerateVerseRequest
	if err := c.ShouldBindJSON(&generateVerseRequest); err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Topic and rapper are required"})
		return
	}

	verse, err := v.verseRequester.Generate(c.Request.Context(), inbound.GenerateVerseParams{
		Topic:     generateVerseRequest.Topic,
		PersonaID: generateVerseRequest.Rapper,
	})
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(verseErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, dto.GenerateVerseResponse{Rap: verse})
}

func (v *verseController) RegisterRoutes(g *gin.Engine) {
	g.POST("/api/generate-rap", v.GenerateVerse)
	g.POST("/api/generate-rap-anthropic", v.GenerateVerse)
}

func verseErrorResponse(err error) (int, dto.ErrorResponse) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message}
	}

	var providerErr *domain.ProviderError
	if errors.As(err, &providerErr) {
		return http.StatusInternalServerError, dto.ErrorResponse{Error: verseFailureMessage, Details: providerErr.Message}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{Error: verseFailureMessage, Details: err.Error()}
}
