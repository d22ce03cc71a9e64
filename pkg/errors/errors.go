package errors

import (
	"errors"
	"fmt"

	"solid-example/domain/shared"
)

// ErrorCode error code
type ErrorCode string

const (
	CodeInternal             ErrorCode = "INTERNAL_ERROR"
	CodeInvalidArgument      ErrorCode = "INVALID_ARGUMENT"
	CodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	CodeIOFailure            ErrorCode = "IO_FAILURE"
	CodeConfig               ErrorCode = "CONFIG_ERROR"
)

// AppError application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ExitCode process exit status used by the CLI
func (e *AppError) ExitCode() int {
	switch e.Code {
	case CodeInvalidArgument:
		return 2
	case CodeUnsupportedOperation:
		return 3
	case CodeIOFailure:
		return 4
	case CodeConfig:
		return 78
	default:
		return 1
	}
}

// New creates a new error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func Config(err error) *AppError {
	return Wrap(err, CodeConfig, "invalid configuration")
}

// Is reports whether err carries the given code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// MapDomainError maps a domain error to an application error
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, shared.ErrInvalidArgument):
		return Wrap(err, CodeInvalidArgument, err.Error())
	case errors.Is(err, shared.ErrUnsupportedOperation):
		return Wrap(err, CodeUnsupportedOperation, err.Error())
	case errors.Is(err, shared.ErrIOFailure):
		return Wrap(err, CodeIOFailure, err.Error())
	default:
		return Wrap(err, CodeInternal, "internal error")
	}
}
