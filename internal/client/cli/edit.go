package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/stocktake/internal/client/sync"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}

	st := c.inv.State()
	item, err := c.resolveItem(st, args[0])
	if err != nil {
		return err
	}
	area, err := c.resolveArea(st, args[1])
	if err != nil {
		return err
	}

	// "+n" и "-n" меняют текущее значение
	raw := args[2]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", raw)
	}
	qty := n
	if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "-") {
		qty = st.Quantities[item][area] + n
	}

	if err := c.inv.SetQuantity(ctx, item, area, qty); err != nil {
		return err
	}

	got := c.inv.State().Quantities[item][area]
	c.io.Println(describe("%s in %s: %d", st.Items[item].Name, st.Areas[area], got))
	return nil
}

func (c *Cli) runThreshold(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	st := c.inv.State()
	item, err := c.resolveItem(st, args[0])
	if err != nil {
		return err
	}
	threshold, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid threshold %q", args[1])
	}

	if err := c.inv.SetThreshold(ctx, item, threshold); err != nil {
		return err
	}
	c.io.Println(describe("%s threshold: %s", st.Items[item].Name, formatThreshold(threshold)))
	return nil
}

func (c *Cli) runAddArea(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	name := strings.Join(args, " ")
	if err := c.inv.AddArea(ctx, name); err != nil {
		return err
	}
	c.io.Println(describe("Area %q added", strings.TrimSpace(name)))
	return nil
}

func (c *Cli) runAddItem(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return ErrUsage
	}

	var threshold float64
	if len(args) == 2 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid threshold %q", args[1])
		}
		threshold = v
	}

	if err := c.inv.AddItem(ctx, args[0], threshold); err != nil {
		return err
	}
	c.io.Println(describe("Item %q added", strings.TrimSpace(args[0])))
	return nil
}

func (c *Cli) runRenameArea(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	st := c.inv.State()
	area, err := c.resolveArea(st, args[0])
	if err != nil {
		return err
	}
	if err := c.inv.RenameArea(ctx, area, args[1]); err != nil {
		return err
	}
	c.io.Println(describe("Area %q renamed to %q", st.Areas[area], strings.TrimSpace(args[1])))
	return nil
}

func (c *Cli) runRenameItem(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	st := c.inv.State()
	item, err := c.resolveItem(st, args[0])
	if err != nil {
		return err
	}
	if err := c.inv.RenameItem(ctx, item, args[1]); err != nil {
		return err
	}
	c.io.Println(describe("Item %q renamed to %q", st.Items[item].Name, strings.TrimSpace(args[1])))
	return nil
}

func (c *Cli) runMoveArea(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	st := c.inv.State()
	from, err := c.resolveArea(st, args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1], len(st.Areas))
	if err != nil {
		return err
	}
	if err := c.inv.MoveArea(ctx, from, to); err != nil {
		return err
	}
	c.io.Println(describe("Area %q moved to position %d", st.Areas[from], to+1))
	return nil
}

func (c *Cli) runMoveItem(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}

	st := c.inv.State()
	from, err := c.resolveItem(st, args[0])
	if err != nil {
		return err
	}
	to, err := parsePosition(args[1], len(st.Items))
	if err != nil {
		return err
	}
	if err := c.inv.MoveItem(ctx, from, to); err != nil {
		return err
	}
	c.io.Println(describe("Item %q moved to position %d", st.Items[from].Name, to+1))
	return nil
}

func (c *Cli) runRemoveArea(ctx context.Context, args []string) error {
	positional, flags, err := extractFlags(args, "into")
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return ErrUsage
	}

	st := c.inv.State()
	area, err := c.resolveArea(st, positional[0])
	if err != nil {
		return err
	}

	opts := sync.RemoveAreaOptions{}
	if into, ok := flags["into"]; ok {
		dest, err := c.resolveArea(st, into)
		if err != nil {
			return err
		}
		opts.ReassignTo = &dest
	}

	prompt, err := c.inv.AreaRemoval(area)
	if err != nil {
		return err
	}

	// Перенос ничего не теряет, поэтому подтверждение не требуется
	if opts.ReassignTo != nil {
		prompt.Required = false
	}

	ok, err := c.confirm(prompt, flags["yes"] == "true")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}
	opts.Confirmed = true

	if err := c.inv.RemoveArea(ctx, area, opts); err != nil {
		return err
	}

	if opts.ReassignTo != nil {
		c.io.Println(describe("Area %q removed, %d units moved to %q", prompt.Name, prompt.Total, st.Areas[*opts.ReassignTo]))
	} else {
		c.io.Println(describe("Area %q removed", prompt.Name))
	}
	return nil
}

func (c *Cli) runRemoveItem(ctx context.Context, args []string) error {
	positional, flags, err := extractFlags(args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return ErrUsage
	}

	item, err := c.resolveItem(c.inv.State(), positional[0])
	if err != nil {
		return err
	}

	prompt, err := c.inv.ItemRemoval(item)
	if err != nil {
		return err
	}

	ok, err := c.confirm(prompt, flags["yes"] == "true")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.inv.RemoveItem(ctx, item, true); err != nil {
		return err
	}
	c.io.Println(describe("Item %q removed", prompt.Name))
	return nil
}
