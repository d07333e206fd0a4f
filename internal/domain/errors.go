package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrBadRequest    ErrorCode = "BAD_REQUEST"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrUnprocessable ErrorCode = "UNPROCESSABLE_ENTITY"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// ErrQuestionNotFound is reported by the repository when a delete
// targets an id that has no row.
var ErrQuestionNotFound = errors.New("question not found")

// DomainError carries an error code alongside the message so the HTTP
// layer can map it to a status without inspecting the wrapped cause.
type DomainError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewBadRequestError(message string) *DomainError {
	return NewError(ErrBadRequest, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewUnprocessableError(message string, err error) *DomainError {
	return NewError(ErrUnprocessable, message, err)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
