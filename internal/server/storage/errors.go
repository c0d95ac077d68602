package storage

import "errors"

// Common storage errors
var (
	// ErrStateNotFound indicates that no state document exists for the key
	ErrStateNotFound = errors.New("state document not found")

	// ErrRecordNotFound indicates that a history record was not found
	ErrRecordNotFound = errors.New("history record not found")

	// ErrUnknownKind indicates an unsupported history record kind
	ErrUnknownKind = errors.New("unknown history kind")
)
