package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/models"
)

const (
	keyInventoryState = "inventory_state"
	keyHistory        = "history"
)

// SaveState overwrites the cached inventory state
func (s *Storage) SaveState(ctx context.Context, state models.InventoryState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := s.put(bucketCache, keyInventoryState, data); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// GetState returns the cached inventory state.
// A document missing any of its three fields or breaking the matrix invariant
// is reported as ErrInvalidCache.
func (s *Storage) GetState(ctx context.Context) (models.InventoryState, error) {
	data, err := s.get(bucketCache, keyInventoryState)
	if err != nil {
		return models.InventoryState{}, fmt.Errorf("failed to get state: %w", err)
	}
	if data == nil {
		return models.InventoryState{}, storage.ErrCacheMiss
	}

	state, err := models.DecodeState(data)
	if err != nil {
		return models.InventoryState{}, fmt.Errorf("%w: %w", storage.ErrInvalidCache, err)
	}
	return state, nil
}

// SaveHistory overwrites the cached history list
func (s *Storage) SaveHistory(ctx context.Context, records []models.HistoryRecord) error {
	if records == nil {
		records = []models.HistoryRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := s.put(bucketCache, keyHistory, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// GetHistory returns the cached history list
func (s *Storage) GetHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	data, err := s.get(bucketCache, keyHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if data == nil {
		return nil, storage.ErrCacheMiss
	}

	var records []models.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrInvalidCache, err)
	}
	return records, nil
}
