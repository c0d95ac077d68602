package cli

import (
	"context"

	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/models"
)

//go:generate moq -out inventory_mock.go . Inventory

// Inventory is the part of *sync.Synchronizer the commands use
type Inventory interface {
	State() models.InventoryState
	History() []models.HistoryRecord
	Status() sync.Status
	Options() sync.Options

	SetQuantity(ctx context.Context, item, area, qty int) error
	SetThreshold(ctx context.Context, item int, threshold float64) error
	AddArea(ctx context.Context, name string) error
	AddItem(ctx context.Context, name string, threshold float64) error
	RenameArea(ctx context.Context, index int, name string) error
	RenameItem(ctx context.Context, index int, name string) error
	MoveArea(ctx context.Context, from, to int) error
	MoveItem(ctx context.Context, from, to int) error

	AreaRemoval(index int) (sync.RemovalPrompt, error)
	ItemRemoval(index int) (sync.RemovalPrompt, error)
	RemoveArea(ctx context.Context, index int, opts sync.RemoveAreaOptions) error
	RemoveItem(ctx context.Context, index int, confirmed bool) error

	SaveArea(ctx context.Context, areaIndex int, date string) (models.HistoryRecord, error)
	SaveSnapshot(ctx context.Context, title string) (sync.SnapshotResult, error)
	RefreshHistory(ctx context.Context) ([]models.HistoryRecord, error)
	SelectHistory(kind models.HistoryKind, id int64) (models.HistoryRecord, error)
	DeleteHistory(ctx context.Context, kind models.HistoryKind, id int64, confirmation string) error

	Retry(ctx context.Context) error
	Subscribe(ctx context.Context) error
}

var _ Inventory = (*sync.Synchronizer)(nil)
