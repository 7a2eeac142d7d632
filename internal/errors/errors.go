package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error with an optional cause and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMeta sets one metadata entry
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap sets several metadata entries
func (e *Error) WithMetaMap(meta map[string]any) *Error {
	for k, v := range meta {
		e.WithMeta(k, v)
	}
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// wrap annotates err. A nil code keeps the code of a wrapped *Error, or
// Internal for foreign errors. Metadata of a wrapped *Error is copied.
func wrap(err error, code *Code, message string) *Error {
	if err == nil {
		return nil
	}

	out := &Error{Code: CodeInternal, Message: message, Cause: err}

	var inner *Error
	if errors.As(err, &inner) {
		out.Code = inner.Code
		out.Meta = maps.Clone(inner.Meta)
	}
	if code != nil {
		out.Code = *code
	}
	return out
}

// Wrap annotates err, keeping its code when it is an *Error
func Wrap(err error, message string) *Error {
	return wrap(err, nil, message)
}

// Wrapf annotates err with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return wrap(err, nil, fmt.Sprintf(format, args...))
}

// WrapWithCode annotates err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	return wrap(err, &code, message)
}

// WrapWithCodef annotates err with a formatted message and replaces its code
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return wrap(err, &code, fmt.Sprintf(format, args...))
}

// Shorthands for the codes this service returns

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }
