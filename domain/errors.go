package domain

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned by text generators when the provider answered
// with a success status but the payload carried no text.
var ErrNoContent = errors.New("no content generated")

// ValidationError reports missing or invalid input detected before any
// provider is contacted.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError reports a failed call to an external provider. StatusCode is
// zero when the request never produced an HTTP response, in which case Err
// holds the transport error.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
