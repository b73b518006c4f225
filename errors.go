package nxncube

import "errors"

// Sentinel errors for the nxncube package.
var (
	// Construction errors
	ErrInvalidWidth        = errors.New("nxncube: width must be at least 2")
	ErrInvalidShuffleCount = errors.New("nxncube: shuffle count must not be negative")

	// Parsing errors
	ErrInvalidNotation = errors.New("nxncube: invalid turn notation")

	// State errors
	ErrDisposed = errors.New("nxncube: cube has been disposed")
)
