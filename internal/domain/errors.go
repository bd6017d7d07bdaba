package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgConfiguration = "configuration error"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgPoolNotFound = "pool not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrConfiguration marks a data-authoring mistake, such as a pool whose
	// weights exceed BaseWeight. It is fatal to the roller or catalog being built.
	ErrConfiguration = errors.New(ErrMsgConfiguration)

	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrPoolNotFound = errors.New(ErrMsgPoolNotFound)
)
