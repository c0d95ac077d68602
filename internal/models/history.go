package models

import (
	"time"
)

// HistoryKind определяет тип исторической записи
type HistoryKind string

const (
	// HistoryKindSnapshot is a full InventoryState snapshot with a title
	HistoryKindSnapshot HistoryKind = "snapshot"
	// HistoryKindArea is a dated per-area inventory record
	HistoryKindArea HistoryKind = "area"
)

// Valid reports whether k is a known kind
func (k HistoryKind) Valid() bool {
	return k == HistoryKindSnapshot || k == HistoryKindArea
}

// HistoryRecord is an immutable record created at save time. Which fields are
// set depends on Kind:
//   - snapshot: Title, Data
//   - area: AreaName, AreaIndex, InventoryDate, Items
//
// ID and CreatedAt are assigned by the server.
type HistoryRecord struct {
	CreatedAt     time.Time       `json:"created_at"`
	Data          *InventoryState `json:"data,omitempty"`
	Kind          HistoryKind     `json:"kind"`
	Title         string          `json:"title,omitempty"`
	AreaName      string          `json:"area_name,omitempty"`
	InventoryDate string          `json:"inventory_date,omitempty"`
	Items         []AreaItem      `json:"items,omitempty"`
	ID            int64           `json:"id"`
	AreaIndex     int             `json:"area_index"`
}

// Total returns the number of units captured by the record
func (r HistoryRecord) Total() int {
	if r.Kind == HistoryKindSnapshot && r.Data != nil {
		return r.Data.GrandTotal()
	}

	total := 0
	for _, item := range r.Items {
		total += item.Qty
	}
	return total
}

// NewSnapshotRecord builds a full-state record ready for insertion
func NewSnapshotRecord(title string, state InventoryState) HistoryRecord {
	data := state.Clone()
	return HistoryRecord{
		Kind:  HistoryKindSnapshot,
		Title: title,
		Data:  &data,
	}
}

// NewAreaRecord builds a per-area record from the state's column
func NewAreaRecord(state InventoryState, areaIndex int, inventoryDate string) (HistoryRecord, error) {
	column, err := state.Column(areaIndex)
	if err != nil {
		return HistoryRecord{}, err
	}

	return HistoryRecord{
		Kind:          HistoryKindArea,
		AreaName:      state.Areas[areaIndex],
		AreaIndex:     areaIndex,
		InventoryDate: inventoryDate,
		Items:         column,
	}, nil
}

// PrependHistory puts rec in front of list and truncates to limit (limit <= 0 = no cap)
func PrependHistory(list []HistoryRecord, rec HistoryRecord, limit int) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(list)+1)
	out = append(out, rec)
	out = append(out, list...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RemoveHistory returns list without the record of the given kind and id
func RemoveHistory(list []HistoryRecord, kind HistoryKind, id int64) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(list))
	for _, rec := range list {
		if rec.Kind == kind && rec.ID == id {
			continue
		}
		out = append(out, rec)
	}
	return out
}
