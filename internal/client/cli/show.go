package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/iudanet/stocktake/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	lowStyle    = cellStyle.Foreground(lipgloss.Color("9"))
	totalStyle  = cellStyle.Bold(true)
)

// lowMarker добавляется к имени товара с низким остатком
const lowMarker = " *"

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	st := c.inv.State()
	if len(st.Items) == 0 && len(st.Areas) == 0 {
		c.io.Println("Inventory is empty. Use 'stocktake add-area' and 'stocktake add-item' to start.")
		return nil
	}

	out, err := c.renderMatrix(st)
	if err != nil {
		return err
	}
	c.io.Println(out)
	c.printSyncLine()
	return nil
}

// renderMatrix draws items×areas with row and column totals
func (c *Cli) renderMatrix(st models.InventoryState) (string, error) {
	alerts, err := c.rule.Check(st)
	if err != nil {
		return "", err
	}
	low := make(map[int]bool, len(alerts))
	for _, a := range alerts {
		low[a.Index] = true
	}

	headers := make([]string, 0, len(st.Areas)+3)
	headers = append(headers, "#", "Item", "Min")
	headers = append(headers, st.Areas...)
	headers = append(headers, "Total")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for i, item := range st.Items {
		name := item.Name
		if low[i] {
			name += lowMarker
		}
		row := make([]string, 0, len(headers))
		row = append(row, strconv.Itoa(i+1), name, formatThreshold(item.Threshold))
		for _, qty := range st.Quantities[i] {
			row = append(row, strconv.Itoa(qty))
		}
		row = append(row, strconv.Itoa(st.RowTotal(i)))
		t.Row(row...)
	}

	totals := make([]string, 0, len(headers))
	totals = append(totals, "", "Total", "")
	for _, total := range st.ColumnTotals() {
		totals = append(totals, strconv.Itoa(total))
	}
	totals = append(totals, strconv.Itoa(st.GrandTotal()))
	t.Row(totals...)

	totalRow := len(st.Items)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row == totalRow:
			return totalStyle
		case low[row]:
			return lowStyle
		default:
			return cellStyle
		}
	})

	out := t.String()
	if len(alerts) > 0 {
		out += "\n" + lowMarker[1:] + " below threshold (" + c.rule.String() + ")"
	}
	return out, nil
}

func (c *Cli) runLow(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	alerts, err := c.rule.Check(c.inv.State())
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		c.io.Println("✓ All items are above their thresholds")
		return nil
	}

	c.io.Printf("%d item(s) running low:\n", len(alerts))
	for _, a := range alerts {
		c.io.Printf("  %-20s %d (min %s)\n", a.Item, a.Qty, formatThreshold(a.Threshold))
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	opts := c.inv.Options()
	status := c.inv.Status()

	c.io.Println("=== Synchronization Status ===")
	c.io.Printf("Document:      %s\n", opts.DocumentID)
	c.io.Printf("Origin:        %s\n", opts.Origin)

	switch {
	case status.Syncing:
		c.io.Println("State:         saving...")
	case status.Dirty:
		c.io.Println("State:         ⚠️  unsaved changes")
	default:
		c.io.Println("State:         ✓ saved")
	}
	if status.PendingWrites > 0 {
		c.io.Printf("Pending:       %d write(s)\n", status.PendingWrites)
	}
	if status.LastSyncedAt.IsZero() {
		c.io.Println("Last synced:   never")
	} else {
		c.io.Printf("Last synced:   %s\n", humanize.Time(status.LastSyncedAt))
	}
	if status.LastError != nil {
		c.io.Printf("Last error:    %v\n", status.LastError)
		c.io.Println("Run 'stocktake retry' to write the local state again.")
	}
	return nil
}

func (c *Cli) runRetry(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := c.inv.Retry(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Inventory saved")
	return nil
}

// printSyncLine печатает однострочный статус под таблицей
func (c *Cli) printSyncLine() {
	status := c.inv.Status()
	switch {
	case status.LastError != nil && status.Dirty:
		c.io.Printf("⚠️  Not saved to server: %v\n", status.LastError)
	case status.Dirty:
		c.io.Println("Saving...")
	case !status.LastSyncedAt.IsZero():
		c.io.Printf("Synced %s\n", humanize.Time(status.LastSyncedAt))
	}
}

// describe renders a single-line summary of a mutation result
func describe(format string, a ...any) string {
	return "✓ " + fmt.Sprintf(format, a...)
}
