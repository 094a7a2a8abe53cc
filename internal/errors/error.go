package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender   Category = "render"
	CategoryIcon     Category = "icon"
	CategoryData     Category = "data"
	CategoryRegistry Category = "registry"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// BridgeError is a structured error with a code, suggestion and cause.
type BridgeError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually naming the offending value.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *BridgeError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *BridgeError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a BridgeError with the same code.
// This lets sentinel errors built with New match detailed instances.
func (e *BridgeError) Is(target error) bool {
	t, ok := target.(*BridgeError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithDetail adds a detailed explanation to the error.
func (e *BridgeError) WithDetail(d string) *BridgeError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail to the error.
func (e *BridgeError) WithDetailf(format string, args ...any) *BridgeError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *BridgeError) WithSuggestion(s string) *BridgeError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *BridgeError) Wrap(err error) *BridgeError {
	e.Wrapped = err
	return e
}

// New creates a BridgeError from a registered error code.
func New(code string) *BridgeError {
	template, ok := registry[code]
	if !ok {
		return &BridgeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &BridgeError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new BridgeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *BridgeError {
	return &BridgeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a BridgeError.
func FromError(err error, code string) *BridgeError {
	if err == nil {
		return nil
	}
	var be *BridgeError
	if stderrors.As(err, &be) {
		return be
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is, or wraps, a BridgeError with code.
func HasCode(err error, code string) bool {
	var be *BridgeError
	for err != nil {
		if stderrors.As(err, &be) {
			if be.Code == code {
				return true
			}
			err = be.Wrapped
			continue
		}
		return false
	}
	return false
}
