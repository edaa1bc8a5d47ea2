package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors (workspace manifest and tool config)
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Package manifest errors
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrManifestInvalid ErrorCode = "MANIFEST_INVALID"
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Symlink resolution errors
	ErrLinkCycle      ErrorCode = "LINK_CYCLE"
	ErrLinkBroken     ErrorCode = "LINK_BROKEN"
	ErrUnsupportedEnv ErrorCode = "UNSUPPORTED_ENV"
)

// LensError represents a structured error with code and details
type LensError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LensError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LensError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LensError) Is(target error) bool {
	var targetErr *LensError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LensError with the given code and message
func New(code ErrorCode, message string) *LensError {
	return &LensError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LensError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LensError {
	return &LensError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LensError
func Wrap(err error, code ErrorCode, message string) *LensError {
	if err == nil {
		return nil
	}
	return &LensError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LensError {
	if err == nil {
		return nil
	}
	return &LensError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LensError) WithDetail(key string, value interface{}) *LensError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lensErr *LensError
	if errors.As(err, &lensErr) {
		return lensErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LensError
func GetErrorCode(err error) ErrorCode {
	var lensErr *LensError
	if errors.As(err, &lensErr) {
		return lensErr.Code
	}
	return ErrUnknown
}
