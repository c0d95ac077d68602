package sync

import "errors"

var (
	// ErrNotLoaded indicates that an operation was attempted before Load
	ErrNotLoaded = errors.New("inventory is not loaded")

	// ErrClosed indicates that the synchronizer was closed
	ErrClosed = errors.New("synchronizer is closed")

	// ErrNotConfirmed indicates that a destructive action lacked the required confirmation
	ErrNotConfirmed = errors.New("action not confirmed")

	// ErrRecordNotFound indicates that the history record is not in the loaded list
	ErrRecordNotFound = errors.New("history record not found")
)
