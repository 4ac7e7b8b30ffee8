package errors

import (
	"errors"
	"net/http"
)

// BaseError carries the HTTP status the boundary layer should answer with.
type BaseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *BaseError) Error() string {
	return e.Message
}

func New(code int, message string) error {
	return &BaseError{Code: code, Message: message}
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

// Conflict covers contention, unavailable slots and duplicate terminal actions.
func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func UnprocessableEntity(message string) error {
	return New(http.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) error {
	return New(http.StatusInternalServerError, message)
}

// HTTPCode extracts the status code of a typed error, defaulting to 500 so
// unexpected storage-level faults never leak details to the client.
func HTTPCode(err error) int {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Code
	}
	return http.StatusInternalServerError
}

// Message returns the client-safe message for a typed error.
func Message(err error) string {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Message
	}
	return "internal server error"
}
