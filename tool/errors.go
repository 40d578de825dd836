package tool

import (
	"errors"
	"strings"
)

var (
	// ErrMissingName is returned by New when no Name option is given.
	ErrMissingName = errors.New("tool: name is required")
	// ErrInvalidName is returned for names providers reject. Names match ^[a-zA-Z0-9_-]{1,64}$.
	ErrInvalidName = errors.New("tool: invalid name")
	// ErrUnsupportedInput is returned when an input type cannot be described as an object schema.
	ErrUnsupportedInput = errors.New("tool: unsupported input type")
	// ErrInvalidArguments wraps argument validation and decoding failures.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrNotInitialized is returned when a zero Definition is invoked.
	ErrNotInitialized = errors.New("tool: definition not initialized")
)

const errorPrefix = "Error: "

// ErrorText renders err the way Run reports failures to a model.
func ErrorText(err error) string {
	return errorPrefix + err.Error()
}

// IsErrorText reports whether s is a failure rendered by ErrorText.
func IsErrorText(s string) bool {
	return strings.HasPrefix(s, errorPrefix)
}
