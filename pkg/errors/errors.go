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
	ErrUnknown         ErrorCode = "UNKNOWN"
	ErrInternal        ErrorCode = "INTERNAL"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Traversal errors
	ErrTooManyFiles ErrorCode = "TOO_MANY_FILES"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// FilesetError represents a structured error with code and details
type FilesetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilesetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilesetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FilesetError) Is(target error) bool {
	var targetErr *FilesetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FilesetError with the given code and message
func New(code ErrorCode, message string) *FilesetError {
	return &FilesetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FilesetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilesetError {
	return &FilesetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FilesetError.
// Callers returning plain error must guard against a nil err themselves,
// a nil *FilesetError stored in an error interface is not nil.
func Wrap(err error, code ErrorCode, message string) *FilesetError {
	if err == nil {
		return nil
	}
	return &FilesetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilesetError {
	if err == nil {
		return nil
	}
	return &FilesetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FilesetError) WithDetail(key string, value interface{}) *FilesetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FilesetError) WithDetails(details map[string]interface{}) *FilesetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var filesetErr *FilesetError
	if errors.As(err, &filesetErr) {
		return filesetErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FilesetError
func GetErrorCode(err error) ErrorCode {
	var filesetErr *FilesetError
	if errors.As(err, &filesetErr) {
		return filesetErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FilesetError
func GetErrorDetails(err error) map[string]interface{} {
	var filesetErr *FilesetError
	if errors.As(err, &filesetErr) {
		return filesetErr.Details
	}
	return nil
}
