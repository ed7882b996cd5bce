package errors

import (
	goerrors "errors"
	"fmt"
)

// ErrorCode represents a docstash error code.
type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // 400
	ErrPermissionDenied  ErrorCode = "PERMISSION_DENIED"  // 403
	ErrNotFound          ErrorCode = "NOT_FOUND"          // 404
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT" // 415
	ErrDecodeFailed      ErrorCode = "DECODE_FAILED"      // 422
	ErrIOFailure         ErrorCode = "IO_FAILURE"         // 500
	ErrDeviceFailure     ErrorCode = "DEVICE_FAILURE"     // 500
	ErrInternal          ErrorCode = "INTERNAL"           // 500
)

// StashError represents a structured error with code, status, and details.
type StashError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *StashError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *StashError {
	return &StashError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a document cannot be found.
func NewNotFound(filename string) *StashError {
	return &StashError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("document not found: %s", filename),
		Details: map[string]any{"filename": filename},
	}
}

// NewUnsupportedFormat creates a 415 error for files whose extension is
// outside the supported set. The file exists; its content just cannot be
// extracted.
func NewUnsupportedFormat(filename string) *StashError {
	return &StashError{
		Code:    ErrUnsupportedFormat,
		Status:  415,
		Message: fmt.Sprintf("unsupported file format: %s", filename),
		Details: map[string]any{"filename": filename},
	}
}

// NewDecodeFailed creates a 422 error for malformed document content.
func NewDecodeFailed(filename string, err error) *StashError {
	msg := fmt.Sprintf("could not decode %s", filename)
	if err != nil {
		msg = fmt.Sprintf("could not decode %s: %v", filename, err)
	}
	return &StashError{
		Code:    ErrDecodeFailed,
		Status:  422,
		Message: msg,
		Details: map[string]any{"filename": filename},
	}
}

// NewPermissionDenied creates a 403 error for filesystem permission failures.
func NewPermissionDenied(path string) *StashError {
	return &StashError{
		Code:    ErrPermissionDenied,
		Status:  403,
		Message: fmt.Sprintf("permission denied: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewIOFailure creates a 500 error for disk and other I/O failures.
func NewIOFailure(err error) *StashError {
	msg := "i/o failure"
	if err != nil {
		msg = err.Error()
	}
	return &StashError{
		Code:    ErrIOFailure,
		Status:  500,
		Message: msg,
	}
}

// NewDeviceFailure creates a 500 error for camera device failures.
func NewDeviceFailure(msg string) *StashError {
	return &StashError{
		Code:    ErrDeviceFailure,
		Status:  500,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *StashError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &StashError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is (or wraps) a StashError with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *StashError
	if goerrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
