package mock

import "rapper-ai/application/ports/outbound"

// Logger discards everything.
type Logger struct{}

func NewLogger() outbound.LoggerPort {
	return Logger{}
}

func (Logger) Info(string) {}

func (Logger) InfoWithFields(string, map[string]interface{}) {}

func (Logger) Error(error, string) {}

func (Logger) ErrorWithFields(error, string, map[string]interface{}) {}

func (Logger) Debug(string) {}

func (Logger) DebugWithFields(string, map[string]interface{}) {}

func (Logger) Warn(string) {}

func (Logger) WarnWithFields(string, map[string]interface{}) {}

func (l Logger) With(map[string]interface{}) outbound.LoggerPort {
	return l
}
