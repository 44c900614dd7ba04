package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeInvalidInput ErrorType = "INVALID_INPUT"
	ErrTypeInternal     ErrorType = "INTERNAL"
	ErrTypeUnavailable  ErrorType = "UNAVAILABLE"
)

type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte

	// Fields carries field name -> messages for INVALID_INPUT errors raised
	// by payload validation. Nil otherwise.
	Fields map[string][]string
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

func Unavailable(message string, err error) *DomainError {
	return New(ErrTypeUnavailable, message, err)
}

// Validation builds an INVALID_INPUT error carrying field-level messages.
func Validation(fields map[string][]string) *DomainError {
	e := New(ErrTypeInvalidInput, "validation failed", nil)
	e.Fields = fields
	return e
}

// TypeOf unwraps err to its DomainError type, defaulting to INTERNAL for
// anything outside the taxonomy.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Type
	}
	return ErrTypeInternal
}

// FieldsOf returns the validation field map carried by err, if any.
func FieldsOf(err error) map[string][]string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// IsNotFound reports whether err is a NOT_FOUND domain error.
func IsNotFound(err error) bool {
	return TypeOf(err) == ErrTypeNotFound
}
