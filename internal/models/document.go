package models

import "time"

// StateDocument is one row of the remote inventory_state table
type StateDocument struct {
	UpdatedAt time.Time
	ID        string
	State     InventoryState
}
