package uuidx

import "github.com/google/uuid"

// New generates a version 7 UUID. Invocation ids are time ordered so log lines sort naturally.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns New as a string.
func NewString() string {
	return New().String()
}
