package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/server/storage"
)

// InsertRecord appends a history record and returns it with ID and CreatedAt set
func (s *Storage) InsertRecord(ctx context.Context, rec models.HistoryRecord) (*models.HistoryRecord, error) {
	createdAt := time.UnixMilli(s.now().UnixMilli())

	var (
		result sql.Result
		err    error
	)

	switch rec.Kind {
	case models.HistoryKindSnapshot:
		if rec.Data == nil {
			return nil, fmt.Errorf("snapshot without data: %w", models.ErrMalformedState)
		}
		data, merr := json.Marshal(rec.Data)
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", merr)
		}
		result, err = s.db.ExecContext(ctx,
			`INSERT INTO inventory_snapshots (created_at, title, data) VALUES (?, ?, ?)`,
			createdAt.UnixMilli(), rec.Title, string(data),
		)
	case models.HistoryKindArea:
		items, merr := json.Marshal(nonNilItems(rec.Items))
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal items: %w", merr)
		}
		result, err = s.db.ExecContext(ctx,
			`INSERT INTO area_inventories (area_name, area_index, inventory_date, items, created_at) VALUES (?, ?, ?, ?, ?)`,
			rec.AreaName, rec.AreaIndex, rec.InventoryDate, string(items), createdAt.UnixMilli(),
		)
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownKind, rec.Kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to insert %s record: %w", rec.Kind, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return &rec, nil
}

// ListRecords returns up to limit records of the kind, newest first
func (s *Storage) ListRecords(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error) {
	// LIMIT -1 в SQLite означает "без ограничения"
	if limit <= 0 {
		limit = -1
	}

	switch kind {
	case models.HistoryKindSnapshot:
		return s.listSnapshots(ctx, limit)
	case models.HistoryKindArea:
		return s.listAreaInventories(ctx, limit)
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownKind, kind)
	}
}

// DeleteRecord removes a history record by ID
func (s *Storage) DeleteRecord(ctx context.Context, kind models.HistoryKind, id int64) error {
	var query string
	switch kind {
	case models.HistoryKindSnapshot:
		query = `DELETE FROM inventory_snapshots WHERE id = ?`
	case models.HistoryKindArea:
		query = `DELETE FROM area_inventories WHERE id = ?`
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownKind, kind)
	}

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

func (s *Storage) listSnapshots(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	query := `
		SELECT id, created_at, title, data
		FROM inventory_snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]models.HistoryRecord, 0)
	for rows.Next() {
		var (
			rec       models.HistoryRecord
			createdAt int64
			data      []byte
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Title, &data); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}

		state, err := models.DecodeState(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode snapshot %d: %w", rec.ID, err)
		}

		rec.Kind = models.HistoryKindSnapshot
		rec.CreatedAt = time.UnixMilli(createdAt)
		rec.Data = &state
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func (s *Storage) listAreaInventories(ctx context.Context, limit int) ([]models.HistoryRecord, error) {
	query := `
		SELECT id, area_name, area_index, inventory_date, items, created_at
		FROM area_inventories
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query area inventories: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]models.HistoryRecord, 0)
	for rows.Next() {
		var (
			rec       models.HistoryRecord
			items     []byte
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.AreaName, &rec.AreaIndex, &rec.InventoryDate, &items, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan area inventory: %w", err)
		}

		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items of record %d: %w", rec.ID, err)
		}

		rec.Kind = models.HistoryKindArea
		rec.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func nonNilItems(items []models.AreaItem) []models.AreaItem {
	if items == nil {
		return []models.AreaItem{}
	}
	return items
}
