package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"
)

const keyLastSyncedAt = "last_synced_at"

// SaveLastSyncedAt saves the time of the last successful sync
func (s *Storage) SaveLastSyncedAt(ctx context.Context, t time.Time) error {
	// Храним unix-миллисекунды в big-endian
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(t.UnixMilli()))

	if err := s.put(bucketMeta, keyLastSyncedAt, buf); err != nil {
		return fmt.Errorf("failed to save last synced at: %w", err)
	}
	return nil
}

// GetLastSyncedAt returns the time of the last successful sync
// Returns the zero time if no sync has been performed yet
func (s *Storage) GetLastSyncedAt(ctx context.Context) (time.Time, error) {
	data, err := s.get(bucketMeta, keyLastSyncedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last synced at: %w", err)
	}
	if len(data) != 8 {
		return time.Time{}, nil
	}
	return time.UnixMilli(int64(binary.BigEndian.Uint64(data))), nil
}
