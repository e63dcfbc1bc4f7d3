package adapters

import (
	"github.com/rs/zerolog"
	"io"
	"rapper-ai/application/ports/outbound"
)

type zerologWrapper struct {
	logger zerolog.Logger
}

// NewZerologWrapper writes JSON entries with timestamps to w. Unknown level
// names fall back to info.
func NewZerologWrapper(w io.Writer, level string) outbound.LoggerPort {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	return &zerologWrapper{
		logger: zerolog.New(w).Level(parsedLevel).With().Timestamp().Logger(),
	}
}

func (z *zerologWrapper) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zerologWrapper) Error(err error, msg string) {
	z.logger.Error().Err(err).Msg(msg)
}

func (z *zerologWrapper) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *zerologWrapper) Warn(msg string) {
	z.logger.Warn().Msg(msg)
}

func (z *zerologWrapper) InfoWithFields(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}

func (z *zerologWrapper) DebugWithFields(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) WarnWithFields(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) With(fields map[string]interface{}) outbound.LoggerPort {
	return &zerologWrapper{
		logger: z.logger.With().Fields(fields).Logger(),
	}
}
