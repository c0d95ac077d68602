package api

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the remote side of synchronization: the state document,
// the history tables and the change stream.
type ClientAPI interface {
	// GetState returns ErrNotFound if the document doesn't exist
	GetState(ctx context.Context, id string) (*models.StateDocument, error)

	// PutState replaces the whole document
	PutState(ctx context.Context, id string, state models.InventoryState) error

	// ListHistory returns up to limit records of the kind, newest first
	ListHistory(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error)

	// InsertHistory stores a record and returns it with server-assigned ID and CreatedAt
	InsertHistory(ctx context.Context, rec models.HistoryRecord) (*models.HistoryRecord, error)

	// DeleteHistory returns ErrNotFound if the record doesn't exist
	DeleteHistory(ctx context.Context, kind models.HistoryKind, id int64) error

	// Subscribe reads the change stream of the document and calls handle for
	// each event. It blocks until ctx is cancelled or the stream breaks.
	Subscribe(ctx context.Context, id string, handle func(api.ChangeEvent)) error
}
