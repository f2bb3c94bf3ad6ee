// Package platformerrors provides layered, typed errors shared across the service.
package platformerrors

import (
	"context"
	"errors"
	"fmt"
)

// Layer identifies where in the stack an error originated.
type Layer string

const (
	LayerDomain     Layer = "domain"
	LayerRepository Layer = "repository"
	LayerHandler    Layer = "handler"
	LayerInfra      Layer = "infrastructure"
)

// ErrorType classifies an error for transport mapping and recovery decisions.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeDatabase     ErrorType = "database_error"
	ErrorTypeExternal     ErrorType = "external_error"
	ErrorTypeExtraction   ErrorType = "extraction_error"
	ErrorTypeBusy         ErrorType = "busy"
	ErrorTypeInternal     ErrorType = "internal"
)

// PlatformError carries layer, type and a stable code alongside the message.
type PlatformError struct {
	Layer   Layer
	Type    ErrorType
	Message string
	Cause   error
	Code    string
}

func (e *PlatformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PlatformError) Unwrap() error {
	return e.Cause
}

// NewError builds a PlatformError at the given layer. The code is a stable
// identifier for the call site, used in logs to locate the origin.
func NewError(_ context.Context, layer Layer, errType ErrorType, message string, cause error, code string) error {
	return &PlatformError{
		Layer:   layer,
		Type:    errType,
		Message: message,
		Cause:   cause,
		Code:    code,
	}
}

// AsError wraps err, preserving its type when it is already a PlatformError.
func AsError(ctx context.Context, layer Layer, err error, message string) error {
	if err == nil {
		return nil
	}
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return &PlatformError{
			Layer:   layer,
			Type:    platformErr.Type,
			Message: message,
			Cause:   err,
			Code:    platformErr.Code,
		}
	}
	return NewError(ctx, layer, ErrorTypeInternal, message, err, "")
}

// TypeOf returns the ErrorType of err, or ErrorTypeInternal for plain errors.
func TypeOf(err error) ErrorType {
	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Type
	}
	return ErrorTypeInternal
}

// IsType reports whether err carries the given ErrorType.
func IsType(err error, errType ErrorType) bool {
	return TypeOf(err) == errType
}
