package storage

import (
	"context"
	"time"

	"github.com/iudanet/stocktake/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage is the device-local copy of the inventory state and the
// history list. It is a fallback for when the server is unreachable.
type CacheStorage interface {
	// SaveState overwrites the cached state
	SaveState(ctx context.Context, state models.InventoryState) error

	// GetState returns the cached state
	// Returns ErrCacheMiss if nothing is cached and ErrInvalidCache if the
	// cached document is unreadable or structurally invalid
	GetState(ctx context.Context) (models.InventoryState, error)

	// SaveHistory overwrites the cached history list
	SaveHistory(ctx context.Context, records []models.HistoryRecord) error

	// GetHistory returns the cached history list
	// Returns ErrCacheMiss if nothing is cached
	GetHistory(ctx context.Context) ([]models.HistoryRecord, error)

	// SaveLastSyncedAt records the time of the last confirmed remote write or read
	SaveLastSyncedAt(ctx context.Context, t time.Time) error

	// GetLastSyncedAt returns the zero time if no sync has happened yet
	GetLastSyncedAt(ctx context.Context) (time.Time, error)
}
