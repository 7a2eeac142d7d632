package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is; an *Error target matches by code
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of err; foreign errors are Internal
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of err, if any
func GetMeta(err error) map[string]any {
	var e *Error
	if errors.As(err, &e) {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message of err without code or cause
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool { return HasCode(err, CodeNotFound) }

func IsInvalidArgument(err error) bool { return HasCode(err, CodeInvalidArgument) }

func IsInternal(err error) bool { return HasCode(err, CodeInternal) }

func IsUnavailable(err error) bool { return HasCode(err, CodeUnavailable) }

func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
