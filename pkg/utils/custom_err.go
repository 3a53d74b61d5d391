package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrSessionNotFound  = errors.New("session not found")
	ErrPlanNotFound     = errors.New("no itinerary plan stored for session")
	ErrGenerationFailed = errors.New("itinerary generation failed")
	ErrTimeout          = errors.New("generation timed out")
)

// ErrMalformedResponse wraps ErrGenerationFailed so callers that only care
// about the user-facing category can errors.Is against the parent, while the
// HTTP layer still logs malformed output distinctly.
var ErrMalformedResponse = fmt.Errorf("%w: malformed completion response", ErrGenerationFailed)

// ValidationError collects every violated field of a request or plan,
// not just the first one found.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// ErrOrNil collapses an empty violation list to an untyped nil so callers
// can compare the result against nil directly.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
