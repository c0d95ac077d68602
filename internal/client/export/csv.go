// Package export writes spreadsheet copies of the inventory.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/natefinch/atomic"

	"github.com/iudanet/stocktake/internal/models"
)

// FileLayout is the timestamp layout used in export file names
const FileLayout = "20060102-150405"

// CSVExporter writes the quantity matrix as a CSV file into Dir.
// Files are named inventory-YYYYMMDD-HHMMSS.csv.
type CSVExporter struct {
	now func() time.Time
	Dir string
}

// NewCSVExporter creates an exporter writing into dir
func NewCSVExporter(dir string) *CSVExporter {
	return &CSVExporter{Dir: dir, now: time.Now}
}

// Export writes the state and returns the file path
func (e *CSVExporter) Export(ctx context.Context, state models.InventoryState) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, state); err != nil {
		return "", err
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}
	path := filepath.Join(e.Dir, "inventory-"+now().Format(FileLayout)+".csv")

	// Файл появляется целиком или не появляется вовсе
	if err := atomic.WriteFile(path, &buf); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	return path, nil
}

// WriteCSV renders the state: a header row (Item, Threshold, areas..., Total),
// one row per item and a totals row.
func WriteCSV(buf *bytes.Buffer, state models.InventoryState) error {
	w := csv.NewWriter(buf)

	header := make([]string, 0, len(state.Areas)+3)
	header = append(header, "Item", "Threshold")
	header = append(header, state.Areas...)
	header = append(header, "Total")
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, item := range state.Items {
		row := make([]string, 0, len(header))
		row = append(row, item.Name, strconv.FormatFloat(item.Threshold, 'f', -1, 64))
		for _, qty := range state.Quantities[i] {
			row = append(row, strconv.Itoa(qty))
		}
		row = append(row, strconv.Itoa(state.RowTotal(i)))
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	totals := make([]string, 0, len(header))
	totals = append(totals, "Total", "")
	for _, total := range state.ColumnTotals() {
		totals = append(totals, strconv.Itoa(total))
	}
	totals = append(totals, strconv.Itoa(state.GrandTotal()))
	if err := w.Write(totals); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	w.Flush()
	return w.Error()
}
