package storage

import "errors"

// Common client storage errors
var (
	// ErrCacheMiss indicates that the cache holds no value for the key
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidCache indicates that the cached value cannot be decoded or breaks the matrix invariant
	ErrInvalidCache = errors.New("cached value is invalid")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
