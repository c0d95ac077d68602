package cli

import (
	"context"

	"github.com/iudanet/stocktake/internal/models"
)

func (c *Cli) runWatch(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	c.setWatching(true)
	defer c.setWatching(false)

	if err := c.inv.Subscribe(ctx); err != nil {
		return err
	}

	out, err := c.renderMatrix(c.inv.State())
	if err != nil {
		return err
	}
	c.io.Println(out)
	c.io.Println("Watching for changes, press Ctrl+C to stop.")

	<-ctx.Done()
	return nil
}

// OnChange is the synchronizer change listener. While watching, every
// state change is redrawn.
func (c *Cli) OnChange(st models.InventoryState) {
	c.mu.Lock()
	watching := c.watching
	c.mu.Unlock()
	if !watching {
		return
	}

	out, err := c.renderMatrix(st)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return
	}
	c.io.Println()
	c.io.Println(out)
}

func (c *Cli) setWatching(v bool) {
	c.mu.Lock()
	c.watching = v
	c.mu.Unlock()
}
