package mysql

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
	var (
		docID     string
		data      []byte
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, data, updated_at FROM inventory_state WHERE id = ?`, id,
	).Scan(&docID, &data, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query state: %w", err)
	}

	state, err := models.DecodeState(data)
	if err != nil {
		return nil, fmt.Errorf("decode state %q: %w", id, err)
	}

	return &models.StateDocument{ID: docID, State: state, UpdatedAt: time.UnixMilli(updatedAt)}, nil
}

// UpsertState replaces the whole document.
// MySQL reports 1 affected row for an insert and 2 for an update.
func (s *Storage) UpsertState(ctx context.Context, id string, state models.InventoryState) (*models.StateDocument, bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, false, fmt.Errorf("marshal state: %w", err)
	}

	now := time.UnixMilli(s.now().UnixMilli())
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO inventory_state (id, data, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data), updated_at = VALUES(updated_at)`,
		id, string(data), now.UnixMilli(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert state: %w", err)
	}

	rows, _ := result.RowsAffected()

	return &models.StateDocument{ID: id, State: state.Clone(), UpdatedAt: now}, rows == 1, nil
}
