package gotdiff

import (
	"errors"
	"fmt"
)

// ErrTooLarge is matched by errors.Is for inputs over the size ceiling.
var ErrTooLarge = errors.New("content too large")

// TooLargeError reports that one side of a diff exceeds the configured ceiling.
// Callers should narrow the edit scope and retry.
type TooLargeError struct {
	Side  string // "old" or "new"
	Size  int    // Input size in bytes
	Limit int    // Configured ceiling in bytes
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s content too large: %d bytes exceeds limit of %d bytes", e.Side, e.Size, e.Limit)
}

func (e *TooLargeError) Is(target error) bool {
	return target == ErrTooLarge
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates an input preparation failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}
