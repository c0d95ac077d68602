package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func TestStateConversion(t *testing.T) {
	state := models.InventoryState{
		Areas:      []string{"Kitchen", "Spa"},
		Items:      []models.Item{{Name: "Broom", Threshold: 2}},
		Quantities: [][]int{{3, 5}},
	}

	data := FromState(state)
	assert.Equal(t, []string{"Kitchen", "Spa"}, data.Areas)
	assert.Equal(t, []Item{{Name: "Broom", Threshold: 2}}, data.Items)

	// Изменение wire-копии не затрагивает исходное состояние
	data.Quantities[0][0] = 42
	assert.Equal(t, 3, state.Quantities[0][0])

	back, err := FromState(state).ToState()
	require.NoError(t, err)
	assert.Equal(t, state, back)
}

func TestToState_Rejects(t *testing.T) {
	_, err := InventoryData{Areas: []string{"A"}, Items: []Item{}}.ToState()
	assert.ErrorIs(t, err, models.ErrMalformedState)

	_, err = InventoryData{
		Areas:      []string{"A"},
		Items:      []Item{{Name: "x"}},
		Quantities: [][]int{{1, 2}},
	}.ToState()
	assert.ErrorIs(t, err, models.ErrMalformedState)
}

func TestAreaInventory_Record(t *testing.T) {
	rec := AreaInventory{
		ID:            7,
		AreaName:      "Kitchen",
		AreaIndex:     0,
		InventoryDate: "2024-01-15",
		Items:         []AreaItem{{Name: "Broom", Qty: 3}},
	}.Record()

	assert.Equal(t, models.HistoryKindArea, rec.Kind)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, []models.AreaItem{{Name: "Broom", Qty: 3}}, rec.Items)
}

func TestSnapshotFromRecord(t *testing.T) {
	rec := models.NewSnapshotRecord("weekly", models.DefaultState())
	rec.ID = 3

	snap := SnapshotFromRecord(rec)
	assert.Equal(t, "weekly", snap.Title)
	assert.Equal(t, int64(3), snap.ID)

	back, err := snap.Record()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultState(), *back.Data)
}

func TestAreaInventoryFromRecord(t *testing.T) {
	rec, err := models.NewAreaRecord(models.DefaultState(), 1, "2024-01-15")
	require.NoError(t, err)

	wire := AreaInventoryFromRecord(rec)
	assert.Equal(t, "Spa", wire.AreaName)
	assert.Equal(t, 1, wire.AreaIndex)
	assert.Equal(t, rec.Items, wire.Record().Items)
}
