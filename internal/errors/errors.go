package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is a coded error carried through both pipelines.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message
func Newf(code, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternalError
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		code = appErr.Code
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode adds an error code to an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// Code returns the code of the outermost AppError in the chain, or "UNKNOWN".
func Code(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return err != nil && Code(err) == code
}

const (
	CodeMissingColumn     = "MISSING_COLUMN"
	CodeParseError        = "PARSE_ERROR"
	CodeEmptyDataset      = "EMPTY_DATASET"
	CodeNotFitted         = "NOT_FITTED"
	CodeDimensionMismatch = "DIMENSION_MISMATCH"
	CodeIOError           = "IO_ERROR"
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInternalError     = "INTERNAL_ERROR"
)

func MissingColumn(name string) *AppError {
	return Newf(CodeMissingColumn, "column %q not found", name)
}

func NotFitted(what string) *AppError {
	return Newf(CodeNotFitted, "%s used before Fit", what)
}

func DimensionMismatch(format string, args ...interface{}) *AppError {
	return Newf(CodeDimensionMismatch, format, args...)
}

func InvalidArgument(format string, args ...interface{}) *AppError {
	return Newf(CodeInvalidArgument, format, args...)
}

func IOError(op string, cause error) *AppError {
	return &AppError{
		Code:    CodeIOError,
		Message: op,
		Cause:   cause,
	}
}
