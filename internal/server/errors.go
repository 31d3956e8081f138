// Package server provides the HTTP REST API for email generation.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/outreach-agent/internal/generation"
)

// FailedGenerationMessage is the generic error returned for uncaught
// failures anywhere in the pipeline. Internal detail is logged, never
// leaked to the client.
const FailedGenerationMessage = "Failed to generate email content"

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *generation.NotConfiguredError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
