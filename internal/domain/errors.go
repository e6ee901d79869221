package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrEmptySelection     = errors.New("no symptoms selected")
	ErrEmailTaken         = errors.New("email already exists")
)

// ValidationError reports a bad or missing input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a failure of the backing store. It matches
// ErrStorageUnavailable under errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// PredictionError is returned when the remote classifier is unreachable or
// answers with a non-success status.
type PredictionError struct {
	Reason     string `json:"reason"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e *PredictionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("prediction failed (%d): %s", e.StatusCode, e.Reason)
	}
	return "prediction failed: " + e.Reason
}
