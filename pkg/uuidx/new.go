package uuidx

import "github.com/google/uuid"

// New returns a fresh v7 UUID. v7 identifiers sort by creation time, which
// keeps log output for related deferreds adjacent. Panics if the random
// source fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh v7 UUID rendered as a string.
func NewString() string {
	return New().String()
}
