package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// AsCustomError unwraps err into a *CustomError if it is one.
func AsCustomError(err error) (*CustomError, bool) {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewNotFoundError returns an error for a referenced entity that is absent.
func NewNotFoundError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusNotFound,
		Message: "Not found",
		Detail:  detail,
	}
}

// NewPermissionDeniedError returns an error for an ownership or approval
// violation. The detail carries the human-readable reason.
func NewPermissionDeniedError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusForbidden,
		Message: "Permission denied",
		Detail:  detail,
	}
}

// NewAuthenticationError returns an error for bad credentials or a missing
// or invalid token.
func NewAuthenticationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnauthorized,
		Message: "Authentication failed",
		Detail:  detail,
	}
}

// Attachment specific errors
func NewInvalidAttachmentError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Invalid attachment",
		Detail:  detail,
	}
}

func NewAttachmentTooLargeError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Attachment too large",
		Detail:  detail,
	}
}

// Convenience predicates used by handlers and tests.

func IsNotFound(err error) bool {
	cerr, ok := AsCustomError(err)
	return ok && cerr.Code == http.StatusNotFound
}

func IsPermissionDenied(err error) bool {
	cerr, ok := AsCustomError(err)
	return ok && cerr.Code == http.StatusForbidden
}
