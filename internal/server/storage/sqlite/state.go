package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/server/storage"
)

// GetState retrieves the document by its fixed key
func (s *Storage) GetState(ctx context.Context, id string) (*models.StateDocument, error) {
	query := `SELECT id, data, updated_at FROM inventory_state WHERE id = ?`

	var (
		docID     string
		data      []byte
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(&docID, &data, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	state, err := models.DecodeState(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode state %q: %w", id, err)
	}

	return &models.StateDocument{
		ID:        docID,
		State:     state,
		UpdatedAt: time.UnixMilli(updatedAt),
	}, nil
}

// UpsertState replaces the whole document
func (s *Storage) UpsertState(ctx context.Context, id string, state models.InventoryState) (*models.StateDocument, bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal state: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Проверяем существование документа для определения типа события
	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM inventory_state WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check state: %w", err)
	}

	now := s.now()
	query := `
		INSERT INTO inventory_state (id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, id, string(data), now.UnixMilli()); err != nil {
		return nil, false, fmt.Errorf("failed to upsert state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}

	return &models.StateDocument{
		ID:        id,
		State:     state.Clone(),
		UpdatedAt: time.UnixMilli(now.UnixMilli()),
	}, exists == 0, nil
}
