package pagebreaks

import "errors"

// Sentinel errors for library operations.
var (
	// Host protocol errors.
	ErrEmptyInput      = errors.New("preprocessor input is empty")
	ErrInvalidInput    = errors.New("invalid preprocessor input")
	ErrReadInput       = errors.New("failed to read preprocessor input")
	ErrWriteOutput     = errors.New("failed to write preprocessor output")
	ErrUnknownBookItem = errors.New("unknown book item")

	// Run argument errors.
	ErrNilContext = errors.New("preprocessor context cannot be nil")
	ErrNilBook    = errors.New("book cannot be nil")

	// Version compatibility errors.
	ErrInvalidVersion  = errors.New("invalid mdBook version")
	ErrVersionMismatch = errors.New("mdBook version mismatch")
)
