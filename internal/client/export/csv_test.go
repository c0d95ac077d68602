package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func sampleState() models.InventoryState {
	return models.InventoryState{
		Areas: []string{"Kitchen", "Spa"},
		Items: []models.Item{
			{Name: "Broom", Threshold: 2},
			{Name: "Soap, liquid", Threshold: 1.5},
		},
		Quantities: [][]int{{5, 3}, {0, 4}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleState()))

	want := "Item,Threshold,Kitchen,Spa,Total\n" +
		"Broom,2,5,3,8\n" +
		"\"Soap, liquid\",1.5,0,4,4\n" +
		"Total,,5,7,12\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, models.InventoryState{Areas: []string{}, Items: []models.Item{}, Quantities: [][]int{}}))

	assert.Equal(t, "Item,Threshold,Total\nTotal,,0\n", buf.String())
}

func TestCSVExporter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exp := NewCSVExporter(dir)
	exp.now = func() time.Time { return time.Date(2024, 1, 15, 9, 30, 5, 0, time.UTC) }

	path, err := exp.Export(t.Context(), sampleState())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "inventory-20240115-093005.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Broom,2,5,3,8")
}

func TestCSVExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	exp := NewCSVExporter(t.TempDir())
	_, err := exp.Export(ctx, sampleState())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVExporter_BadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	exp := NewCSVExporter(filepath.Join(file, "sub"))
	_, err := exp.Export(t.Context(), sampleState())
	assert.Error(t, err)
}
