// Package apierror provides standardized error response structures for the API
// and the domain error taxonomy shared by repositories and services.
// All errors returned to clients go through this package so that store
// internals (SQL, driver messages) never reach the response body.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Domain taxonomy ──────────────────────────────────────────────────────────

var (
	ErrNotFound     = errors.New("no encontrado")
	ErrDuplicateKey = errors.New("ya existe")
	ErrValidation   = errors.New("datos invalidos")
	ErrStore        = errors.New("error de base de datos")
	// ErrBusy is a StoreError: the store gave up waiting for a lock.
	ErrBusy = fmt.Errorf("%w: base de datos ocupada, reintente", ErrStore)
	// ErrUnavailable marks a dependency other than the store that is down.
	ErrUnavailable = errors.New("servicio no disponible")
)

// NotFound returns an ErrNotFound carrying a user-facing message.
func NotFound(msg string) error { return fmt.Errorf("%w: %s", ErrNotFound, msg) }

// Duplicate returns an ErrDuplicateKey carrying a user-facing message.
func Duplicate(msg string) error { return fmt.Errorf("%w: %s", ErrDuplicateKey, msg) }

// Unavailable returns an ErrUnavailable carrying a user-facing message.
func Unavailable(msg string) error { return fmt.Errorf("%w: %s", ErrUnavailable, msg) }

// Invalid returns an ErrValidation carrying a user-facing message.
func Invalid(msg string) error { return fmt.Errorf("%w: %s", ErrValidation, msg) }

// Status maps a domain error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBusy), errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to show to the user for err.
func Message(err error) string {
	switch Status(err) {
	case http.StatusInternalServerError:
		return "Error interno del servidor"
	case http.StatusServiceUnavailable:
		if errors.Is(err, ErrBusy) {
			return ErrBusy.Error()
		}
		return err.Error()
	default:
		return err.Error()
	}
}
