package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// HistoryStorage defines persistence of append-only history records.
// Snapshot records live in inventory_snapshots, area records in area_inventories.
type HistoryStorage interface {
	// InsertRecord appends a record; ID and CreatedAt are assigned by the storage
	// Returns ErrUnknownKind for unsupported kinds
	InsertRecord(ctx context.Context, rec models.HistoryRecord) (*models.HistoryRecord, error)

	// ListRecords returns up to limit records of the kind, newest first
	// limit <= 0 means no limit
	ListRecords(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error)

	// DeleteRecord removes a record by ID
	// Returns ErrRecordNotFound if the record doesn't exist
	DeleteRecord(ctx context.Context, kind models.HistoryKind, id int64) error
}
