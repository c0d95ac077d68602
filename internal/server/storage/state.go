package storage

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

// StateStorage defines persistence of the single-document inventory state table
type StateStorage interface {
	// GetState retrieves the document by its fixed key
	// Returns ErrStateNotFound if the document doesn't exist
	GetState(ctx context.Context, id string) (*models.StateDocument, error)

	// UpsertState replaces the whole document (last writer wins)
	// Returns created=true when the document did not exist before
	UpsertState(ctx context.Context, id string, state models.InventoryState) (doc *models.StateDocument, created bool, err error)
}
