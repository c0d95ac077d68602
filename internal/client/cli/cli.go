// Package cli implements the stocktake client commands on top of the
// synchronizer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	gosync "sync"
	"time"

	"github.com/iudanet/stocktake/internal/client/iocli"
	"github.com/iudanet/stocktake/internal/lowstock"
)

var (
	// ErrUnknownCommand indicates an unsupported command name
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage indicates wrong command arguments
	ErrUsage = errors.New("usage")
)

type Cli struct {
	io   iocli.IO
	inv  Inventory
	rule *lowstock.Rule
	now  func() time.Time

	// watching включается командой watch: тогда OnChange перерисовывает таблицу
	mu       gosync.Mutex
	watching bool
}

// New creates the command runner. A nil rule means lowstock.DefaultRule.
func New(stdio iocli.IO, inv Inventory, rule *lowstock.Rule) *Cli {
	if rule == nil {
		rule, _ = lowstock.Compile("")
	}
	return &Cli{io: stdio, inv: inv, rule: rule, now: time.Now}
}

// SetInventory attaches the synchronizer once it is created.
// The synchronizer's OnChange callback needs the Cli first.
func (c *Cli) SetInventory(inv Inventory) {
	c.inv = inv
}

type command struct {
	run   func(c *Cli, ctx context.Context, args []string) error
	usage string
	help  string
}

var commands = map[string]command{
	"show":           {run: (*Cli).runShow, usage: "show", help: "Show the inventory matrix"},
	"low":            {run: (*Cli).runLow, usage: "low", help: "List items below their threshold"},
	"status":         {run: (*Cli).runStatus, usage: "status", help: "Show synchronization status"},
	"retry":          {run: (*Cli).runRetry, usage: "retry", help: "Retry the last failed write"},
	"set":            {run: (*Cli).runSet, usage: "set <item> <area> <qty|+n|-n>", help: "Set a quantity"},
	"threshold":      {run: (*Cli).runThreshold, usage: "threshold <item> <value>", help: "Set an item's low-stock threshold"},
	"add-area":       {run: (*Cli).runAddArea, usage: "add-area <name>", help: "Add an area"},
	"add-item":       {run: (*Cli).runAddItem, usage: "add-item <name> [threshold]", help: "Add an item"},
	"rename-area":    {run: (*Cli).runRenameArea, usage: "rename-area <area> <name>", help: "Rename an area"},
	"rename-item":    {run: (*Cli).runRenameItem, usage: "rename-item <item> <name>", help: "Rename an item"},
	"move-area":      {run: (*Cli).runMoveArea, usage: "move-area <area> <position>", help: "Move an area to a 1-based position"},
	"move-item":      {run: (*Cli).runMoveItem, usage: "move-item <item> <position>", help: "Move an item to a 1-based position"},
	"remove-area":    {run: (*Cli).runRemoveArea, usage: "remove-area <area> [--into <area>] [--yes]", help: "Remove an area"},
	"remove-item":    {run: (*Cli).runRemoveItem, usage: "remove-item <item> [--yes]", help: "Remove an item"},
	"save-area":      {run: (*Cli).runSaveArea, usage: "save-area <area> [YYYY-MM-DD]", help: "Record a dated inventory of one area"},
	"snapshot":       {run: (*Cli).runSnapshot, usage: "snapshot [title]", help: "Save a full snapshot and a CSV export"},
	"history":        {run: (*Cli).runHistory, usage: "history [id]", help: "List history records or show one"},
	"delete-history": {run: (*Cli).runDeleteHistory, usage: "delete-history <id> [--confirm <answer>]", help: "Delete a history record"},
	"watch":          {run: (*Cli).runWatch, usage: "watch", help: "Follow changes made by other clients"},
}

// commandOrder задает порядок в справке
var commandOrder = []string{
	"show", "low", "status", "retry",
	"set", "threshold",
	"add-area", "add-item", "rename-area", "rename-item", "move-area", "move-item",
	"remove-area", "remove-item",
	"save-area", "snapshot", "history", "delete-history",
	"watch",
}

// Run executes one command
func (c *Cli) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		PrintUsage(c.io)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if err := cmd.run(c, ctx, args); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: stocktake %s", ErrUsage, cmd.usage)
		}
		return err
	}
	return nil
}

// PrintUsage writes the command overview
func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Stocktake Client")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  stocktake [OPTIONS] COMMAND [ARGS]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Options:")
	_, _ = fmt.Fprintln(w, "  --config PATH   Config file (default: ~/.config/stocktake/config.toml)")
	_, _ = fmt.Fprintln(w, "  --server URL    Server URL (overrides config)")
	_, _ = fmt.Fprintln(w, "  --db PATH       Local cache database (overrides config)")
	_, _ = fmt.Fprintln(w, "  --doc ID        Inventory document id (overrides config)")
	_, _ = fmt.Fprintln(w, "  --version       Show version information")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	for _, name := range commandOrder {
		cmd := commands[name]
		_, _ = fmt.Fprintf(w, "  %-44s %s\n", cmd.usage, cmd.help)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Areas and items are addressed by name or by 1-based number.")
}
