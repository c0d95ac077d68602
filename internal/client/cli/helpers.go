package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/models"
)

// resolveArea находит зону по имени (с учетом политики регистра) или по номеру с 1
func (c *Cli) resolveArea(st models.InventoryState, arg string) (int, error) {
	if idx := st.AreaIndex(arg); idx >= 0 {
		return idx, nil
	}
	policy := c.inv.Options().NamePolicy
	for i, area := range st.Areas {
		if policy.SameArea(area, strings.TrimSpace(arg)) {
			return i, nil
		}
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(st.Areas) {
		return n - 1, nil
	}
	return -1, fmt.Errorf("unknown area %q", arg)
}

func (c *Cli) resolveItem(st models.InventoryState, arg string) (int, error) {
	if idx := st.ItemIndex(strings.TrimSpace(arg)); idx >= 0 {
		return idx, nil
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(st.Items) {
		return n - 1, nil
	}
	return -1, fmt.Errorf("unknown item %q", arg)
}

// parsePosition переводит номер позиции с 1 в индекс
func parsePosition(arg string, length int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > length {
		return -1, fmt.Errorf("position must be between 1 and %d, got %q", length, arg)
	}
	return n - 1, nil
}

// extractFlags splits args into positional arguments, boolean switches and
// valued options. Options listed in valued consume the next argument.
func extractFlags(args []string, valued ...string) ([]string, map[string]string, error) {
	positional := make([]string, 0, len(args))
	flags := map[string]string{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") || arg == "--" {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		takesValue := false
		for _, v := range valued {
			if v == name {
				takesValue = true
				break
			}
		}

		switch {
		case takesValue && !hasValue:
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("%w: --%s needs a value", ErrUsage, name)
			}
			i++
			flags[name] = args[i]
		case takesValue:
			flags[name] = value
		default:
			flags[name] = "true"
		}
	}

	return positional, flags, nil
}

// confirm asks before a removal that discards units.
// Non-interactive input without --yes is refused.
func (c *Cli) confirm(prompt sync.RemovalPrompt, yes bool) (bool, error) {
	if !prompt.Required || yes {
		return true, nil
	}
	if !c.io.IsInteractive() {
		return false, fmt.Errorf("%w: %s (pass --yes to confirm)", sync.ErrNotConfirmed, prompt.Message)
	}

	answer, err := c.io.ReadInput(prompt.Message + " [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func formatThreshold(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
