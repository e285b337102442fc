package checkpoint

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge   = errors.New("header exceeds maximum size")
	ErrInvalidHeader    = errors.New("invalid header")
	ErrMissingTensor    = errors.New("parameters tensor not found")
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrShapeMismatch    = errors.New("shape mismatch")
)

// ValidationError provides detailed information about a malformed header.
type ValidationError struct {
	Field   string // Header field at fault (e.g., "data_offsets")
	Details string // Additional details
	Err     error  // Sentinel the failure belongs to
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Err, e.Field, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
