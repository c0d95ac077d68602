package api

import "github.com/iudanet/stocktake/internal/models"

// FromState converts the domain state into its wire form
func FromState(s models.InventoryState) InventoryData {
	data := InventoryData{
		Areas:      make([]string, len(s.Areas)),
		Items:      make([]Item, len(s.Items)),
		Quantities: make([][]int, len(s.Quantities)),
	}
	copy(data.Areas, s.Areas)
	for i, item := range s.Items {
		data.Items[i] = Item{Name: item.Name, Threshold: item.Threshold}
	}
	for i, row := range s.Quantities {
		data.Quantities[i] = make([]int, len(row))
		copy(data.Quantities[i], row)
	}
	return data
}

// ToState converts wire data into the domain state and validates the invariant
func (d InventoryData) ToState() (models.InventoryState, error) {
	if d.Areas == nil || d.Items == nil || d.Quantities == nil {
		return models.InventoryState{}, models.ErrMalformedState
	}

	s := models.InventoryState{
		Areas:      make([]string, len(d.Areas)),
		Items:      make([]models.Item, len(d.Items)),
		Quantities: make([][]int, len(d.Quantities)),
	}
	copy(s.Areas, d.Areas)
	for i, item := range d.Items {
		s.Items[i] = models.Item{Name: item.Name, Threshold: item.Threshold}
	}
	for i, row := range d.Quantities {
		s.Quantities[i] = make([]int, len(row))
		copy(s.Quantities[i], row)
	}

	if err := s.Validate(); err != nil {
		return models.InventoryState{}, err
	}
	return s, nil
}

// FromAreaItems converts domain area items into their wire form
func FromAreaItems(items []models.AreaItem) []AreaItem {
	out := make([]AreaItem, len(items))
	for i, item := range items {
		out[i] = AreaItem{Name: item.Name, Qty: item.Qty}
	}
	return out
}

// ToAreaItems converts wire area items into the domain form
func ToAreaItems(items []AreaItem) []models.AreaItem {
	out := make([]models.AreaItem, len(items))
	for i, item := range items {
		out[i] = models.AreaItem{Name: item.Name, Qty: item.Qty}
	}
	return out
}

// Record converts a snapshot row into a history record
func (s Snapshot) Record() (models.HistoryRecord, error) {
	state, err := s.Data.ToState()
	if err != nil {
		return models.HistoryRecord{}, err
	}
	return models.HistoryRecord{
		CreatedAt: s.CreatedAt,
		Data:      &state,
		Kind:      models.HistoryKindSnapshot,
		Title:     s.Title,
		ID:        s.ID,
	}, nil
}

// Record converts an area inventory row into a history record
func (a AreaInventory) Record() models.HistoryRecord {
	return models.HistoryRecord{
		CreatedAt:     a.CreatedAt,
		Kind:          models.HistoryKindArea,
		AreaName:      a.AreaName,
		InventoryDate: a.InventoryDate,
		Items:         ToAreaItems(a.Items),
		ID:            a.ID,
		AreaIndex:     a.AreaIndex,
	}
}

// SnapshotFromRecord converts a snapshot history record into its wire form
func SnapshotFromRecord(rec models.HistoryRecord) Snapshot {
	snap := Snapshot{
		CreatedAt: rec.CreatedAt,
		Title:     rec.Title,
		ID:        rec.ID,
	}
	if rec.Data != nil {
		snap.Data = FromState(*rec.Data)
	}
	return snap
}

// AreaInventoryFromRecord converts an area history record into its wire form
func AreaInventoryFromRecord(rec models.HistoryRecord) AreaInventory {
	return AreaInventory{
		CreatedAt:     rec.CreatedAt,
		AreaName:      rec.AreaName,
		InventoryDate: rec.InventoryDate,
		Items:         FromAreaItems(rec.Items),
		ID:            rec.ID,
		AreaIndex:     rec.AreaIndex,
	}
}
