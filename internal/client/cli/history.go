package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// ErrFutureDate indicates an inventory date after today
var ErrFutureDate = errors.New("inventory date cannot be in the future")

func (c *Cli) runSaveArea(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return ErrUsage
	}

	area, err := c.resolveArea(c.inv.State(), args[0])
	if err != nil {
		return err
	}

	today := c.now().Format(validation.DateLayout)
	date := today
	if len(args) == 2 {
		date, err = validation.ParseInventoryDate(args[1])
		if err != nil {
			return err
		}
		// Формат YYYY-MM-DD сравнивается лексикографически
		if date > today {
			return fmt.Errorf("%w: %s", ErrFutureDate, date)
		}
	}

	rec, err := c.inv.SaveArea(ctx, area, date)
	if err != nil {
		return err
	}
	c.io.Println(describe("Inventory of %q on %s saved (%d units, record #%d)", rec.AreaName, rec.InventoryDate, rec.Total(), rec.ID))
	return nil
}

func (c *Cli) runSnapshot(ctx context.Context, args []string) error {
	res, err := c.inv.SaveSnapshot(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	c.io.Println(describe("Snapshot %q saved (record #%d)", res.Record.Title, res.Record.ID))
	switch {
	case res.ExportErr != nil:
		c.io.Printf("⚠️  Spreadsheet export failed: %v\n", res.ExportErr)
	case res.ExportPath != "":
		c.io.Printf("Spreadsheet: %s\n", res.ExportPath)
	}
	return nil
}

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return c.listHistory(ctx)
	case 1:
		return c.showHistory(args[0])
	default:
		return ErrUsage
	}
}

func (c *Cli) listHistory(ctx context.Context) error {
	records, err := c.inv.RefreshHistory(ctx)
	if err != nil {
		// Сервер недоступен: показываем то, что загружено
		c.io.Printf("⚠️  Could not refresh history: %v\n", err)
		records = c.inv.History()
	}

	kind := c.inv.Options().HistoryKind
	if len(records) == 0 {
		if kind == models.HistoryKindSnapshot {
			c.io.Println("No snapshots yet. Use 'stocktake snapshot' to save one.")
		} else {
			c.io.Println("No area inventories yet. Use 'stocktake save-area' to record one.")
		}
		return nil
	}

	t := table.New().Border(lipgloss.NormalBorder())
	if kind == models.HistoryKindSnapshot {
		t.Headers("ID", "Title", "Saved", "Units")
		for _, rec := range records {
			t.Row(strconv.FormatInt(rec.ID, 10), rec.Title, savedAt(rec), strconv.Itoa(rec.Total()))
		}
	} else {
		t.Headers("ID", "Area", "Date", "Saved", "Units")
		for _, rec := range records {
			t.Row(strconv.FormatInt(rec.ID, 10), rec.AreaName, rec.InventoryDate, savedAt(rec), strconv.Itoa(rec.Total()))
		}
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})

	c.io.Println(t.String())
	return nil
}

func (c *Cli) showHistory(arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q", arg)
	}

	rec, err := c.inv.SelectHistory(c.inv.Options().HistoryKind, id)
	if err != nil {
		return err
	}

	switch rec.Kind {
	case models.HistoryKindSnapshot:
		c.io.Printf("Snapshot #%d %q, saved %s\n", rec.ID, rec.Title, savedAt(rec))
		if rec.Data == nil {
			return nil
		}
		out, err := c.renderMatrix(*rec.Data)
		if err != nil {
			return err
		}
		c.io.Println(out)
	default:
		c.io.Printf("Area %q on %s (#%d), saved %s\n", rec.AreaName, rec.InventoryDate, rec.ID, savedAt(rec))
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Item", "Qty")
		for _, item := range rec.Items {
			t.Row(item.Name, strconv.Itoa(item.Qty))
		}
		t.Row("Total", strconv.Itoa(rec.Total()))
		c.io.Println(t.String())
	}
	return nil
}

func (c *Cli) runDeleteHistory(ctx context.Context, args []string) error {
	positional, flags, err := extractFlags(args, "confirm")
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return ErrUsage
	}

	id, err := strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record id %q", positional[0])
	}

	opts := c.inv.Options()
	answer, given := flags["confirm"]
	if !given && !c.io.IsInteractive() {
		return fmt.Errorf("%w: pass --confirm in non-interactive mode", sync.ErrNotConfirmed)
	}
	if !given {
		prompt := fmt.Sprintf("Delete record #%d? Type %s to confirm: ", id, sync.DeletePhrase)
		if opts.DeletePolicy == sync.DeleteYesNo {
			prompt = fmt.Sprintf("Delete record #%d? [y/N]: ", id)
		}
		answer, err = c.io.ReadInput(prompt)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
	}

	if err := c.inv.DeleteHistory(ctx, opts.HistoryKind, id, answer); err != nil {
		if errors.Is(err, sync.ErrNotConfirmed) {
			c.io.Println("Cancelled.")
			return nil
		}
		return err
	}
	c.io.Println(describe("Record #%d deleted", id))
	return nil
}

func savedAt(rec models.HistoryRecord) string {
	if rec.CreatedAt.IsZero() {
		return "-"
	}
	return humanize.Time(rec.CreatedAt)
}
