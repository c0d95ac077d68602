package mysql

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
			return nil, fmt.Errorf("marshal snapshot: %w", merr)
		}
		result, err = s.db.ExecContext(ctx,
			`INSERT INTO inventory_snapshots (created_at, title, data) VALUES (?, ?, ?)`,
			createdAt.UnixMilli(), rec.Title, string(data))
	case models.HistoryKindArea:
		items := rec.Items
		if items == nil {
			items = []models.AreaItem{}
		}
		data, merr := json.Marshal(items)
		if merr != nil {
			return nil, fmt.Errorf("marshal items: %w", merr)
		}
		result, err = s.db.ExecContext(ctx,
			`INSERT INTO area_inventories (area_name, area_index, inventory_date, items, created_at) VALUES (?, ?, ?, ?, ?)`,
			rec.AreaName, rec.AreaIndex, rec.InventoryDate, string(data), createdAt.UnixMilli())
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownKind, rec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("insert %s record: %w", rec.Kind, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	return &rec, nil
}

// ListRecords returns up to limit records of the kind, newest first
func (s *Storage) ListRecords(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error) {
	// MySQL не поддерживает LIMIT -1, используем максимальное значение
	if limit <= 0 {
		limit = 1<<31 - 1
	}

	var query string
	switch kind {
	case models.HistoryKindSnapshot:
		query = `SELECT id, created_at, title, data FROM inventory_snapshots ORDER BY created_at DESC, id DESC LIMIT ?`
	case models.HistoryKindArea:
		query = `SELECT id, created_at, area_name, area_index, inventory_date, items FROM area_inventories ORDER BY created_at DESC, id DESC LIMIT ?`
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownKind, kind)
	}

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query %s records: %w", kind, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := make([]models.HistoryRecord, 0)
	for rows.Next() {
		rec := models.HistoryRecord{Kind: kind}
		var createdAt int64

		if kind == models.HistoryKindSnapshot {
			var data []byte
			if err := rows.Scan(&rec.ID, &createdAt, &rec.Title, &data); err != nil {
				return nil, fmt.Errorf("scan snapshot: %w", err)
			}
			state, err := models.DecodeState(data)
			if err != nil {
				return nil, fmt.Errorf("decode snapshot %d: %w", rec.ID, err)
			}
			rec.Data = &state
		} else {
			var items []byte
			if err := rows.Scan(&rec.ID, &createdAt, &rec.AreaName, &rec.AreaIndex, &rec.InventoryDate, &items); err != nil {
				return nil, fmt.Errorf("scan area inventory: %w", err)
			}
			if err := json.Unmarshal(items, &rec.Items); err != nil {
				return nil, fmt.Errorf("decode items of record %d: %w", rec.ID, err)
			}
		}

		rec.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
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
		return fmt.Errorf("delete record: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}
