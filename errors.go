package goqubit

import "errors"

// Sentinel errors for the goqubit package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("goqubit: invalid gate notation")
	ErrUnknownGate     = errors.New("goqubit: unknown gate")
	ErrInvalidAngle    = errors.New("goqubit: invalid rotation angle")

	// Tracker errors
	ErrEmptyHistory = errors.New("goqubit: gate history is empty")
)
