package services

import (
	"context"
	"errors"
	"fmt"
	"rapper-ai/application/ports/inbound"
	"rapper-ai/application/ports/outbound"
	"rapper-ai/domain"
	"regexp"
	"strings"
)

// leadInRegexp matches conversational prefaces such as
// "Here's a rap verse about pizza:" at the very start of a reply.
var leadInRegexp = regexp.MustCompile(`(?i)^(Here is |I'll create |This is |Here's |Writing |Let me write |I've written |I wrote ).*?(rap verse|verse|rap|lyrics).*?:`)

type verseRequester struct {
	logger        outbound.LoggerPort
	textGenerator outbound.TextGeneratorPort
	personas      *domain.PersonaCatalog
	workerPool    outbound.TaskDispatcher
}

func NewVerseRequester(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort,
	personas *domain.PersonaCatalog, workerPool outbound.TaskDispatcher) inbound.VerseRequesterPort {
	return &verseRequester{
		logger:        logger,
		textGenerator: textGenerator,
		personas:      personas,
		workerPool:    workerPool,
	}
}

func (v *verseRequester) Generate(ctx context.Context, params inbound.GenerateVerseParams) (string, error) {
	if strings.TrimSpace(params.Topic) == "" || strings.TrimSpace(params.PersonaID) == "" {
		return "", domain.NewValidationError("Topic and rapper are required")
	}

	persona := v.personas.Resolve(params.PersonaID)
	prompt := BuildVersePrompt(params.Topic, persona)

	v.logger.DebugWithFields("Requesting verse", map[string]interface{}{
		"persona":  persona.ID,
		"provider": v.textGenerator.Provider(),
	})

	text, err := dispatch(ctx, v.workerPool, func() (string, error) {
		return v.textGenerator.Generate(ctx, outbound.GenerateTextRequest{Prompt: prompt})
	}, nil)
	if errors.Is(err, domain.ErrNoContent) {
		v.logger.WarnWithFields("Provider returned no text", map[string]interface{}{
			"persona":  persona.ID,
			"provider": v.textGenerator.Provider(),
		})
		text, err = domain.NoContentPlaceholder, nil
	}
	if err != nil {
		v.logger.ErrorWithFields(err, "Failed to generate verse", map[string]interface{}{
			"persona":  persona.ID,
			"provider": v.textGenerator.Provider(),
		})
		return "", fmt.Errorf("failed to generate verse; %w", err)
	}

	return StripLeadIn(text), nil
}

// BuildVersePrompt composes the instruction sent to the text generator.
func BuildVersePrompt(topic string, persona domain.Persona) string {
	return fmt.Sprintf("Write a rap verse about %s in the style of %s.\n"+
		"Capture their %s.\n"+
		"The rap should be %d bars (lines) long, with rhyming patterns typical of %s.\n"+
		"Be authentic to their voice, flow, and typical themes while focusing on the topic of %s.",
		topic, persona.Name, persona.Style, domain.VerseLines, persona.Name, topic)
}

// StripLeadIn removes a single leading lead-in clause, up to and including
// its first colon, and trims the surrounding whitespace.
func StripLeadIn(text string) string {
	return strings.TrimSpace(leadInRegexp.ReplaceAllString(text, ""))
}
