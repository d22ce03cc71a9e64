/*
Package shared holds the error taxonomy and capabilities shared by every example.

Sentinel errors are matched with errors.Is. DomainError captures the call stack
when it is created and formats it only when Stack() is called.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrInvalidArgument a supplied value violates a precondition
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedOperation an implementation cannot honour part of its interface
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrIOFailure an underlying read or write failed
	ErrIOFailure = errors.New("io failure")
)

// DomainError carries the sentinel, the entity involved and the creation stack
type DomainError struct {
	// Err underlying sentinel, used by errors.Is()
	Err error

	// Entity the type that raised the error ("square", "robot", ...)
	Entity string

	// Message human readable description
	Message string

	// Field optional field or operation name
	Field string

	// Cause optional lower-level error (e.g. *fs.PathError)
	Cause error

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the cause to errors.Is/As
func (e *DomainError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Stack formats the captured frames on demand
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack captures the current call stack.
// skip: frames to skip (usually 3: Callers, CaptureStack, NewXxxError)
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack formats frames, dropping runtime internals, at most 10 frames
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) >= 10 {
			break
		}
	}
	return result
}

// NewInvalidArgumentError creates an invalid-argument error for entity.field
func NewInvalidArgumentError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidArgument,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewUnsupportedOperationError creates an unsupported-operation error for entity.operation
func NewUnsupportedOperationError(entity, operation, reason string) error {
	return &DomainError{
		Err:     ErrUnsupportedOperation,
		Entity:  entity,
		Field:   operation,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewIOFailureError wraps an I/O error raised while entity accessed target
func NewIOFailureError(entity, target string, cause error) error {
	return &DomainError{
		Err:     ErrIOFailure,
		Entity:  entity,
		Field:   target,
		Message: fmt.Sprintf("%s: %v", entity, cause),
		Cause:   cause,
		stack:   CaptureStack(3),
	}
}

// Stacker errors that can expose a stack
type Stacker interface {
	Stack() []string
}
