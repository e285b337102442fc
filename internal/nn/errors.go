package nn

import "errors"

// Common errors.
var (
	ErrInvalidArchitecture = errors.New("invalid architecture")
	ErrLengthMismatch      = errors.New("predictions and targets differ in length")
	ErrEmptyBatch          = errors.New("empty batch")
)
