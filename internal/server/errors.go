// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/trends"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrMalformedBody indicates the request body could not be decoded
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, trends.ErrEmptyCatalog) {
		return http.StatusNotFound
	}
	switch err.(type) {
	case *ErrValidation, *ErrMalformedBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
