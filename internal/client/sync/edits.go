package sync

import (
	"context"
	"fmt"

	"github.com/iudanet/stocktake/internal/models"
)

// mutate applies fn to the current state, writes the result to the local
// cache and schedules the remote write according to mode.
func (s *Synchronizer) mutate(ctx context.Context, mode FlushMode, fn func(models.InventoryState) (models.InventoryState, error)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}

	next, err := fn(s.state)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.revision++

	// Кэш обновляется синхронно, чтобы локальная копия не отставала от памяти
	if cerr := s.cache.SaveState(ctx, next); cerr != nil {
		s.logger.Warn("Failed to write state to local cache", "error", cerr)
	}

	if mode == FlushDebounced {
		s.scheduleLocked()
	}
	s.mu.Unlock()

	s.emitChange(next)

	if mode != FlushImmediate {
		return nil
	}
	if _, err := s.flushNow(ctx); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

// SetQuantity sets one cell; negative values are clamped to zero
func (s *Synchronizer) SetQuantity(ctx context.Context, item, area, qty int) error {
	return s.mutate(ctx, s.opts.QuantityFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.SetQuantity(item, area, qty)
	})
}

// SetThreshold sets the low-stock threshold of an item
func (s *Synchronizer) SetThreshold(ctx context.Context, item int, threshold float64) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.SetThreshold(item, threshold)
	})
}

// AddArea appends an area column
func (s *Synchronizer) AddArea(ctx context.Context, name string) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.AddArea(name, s.opts.NamePolicy)
	})
}

// AddItem appends an item row
func (s *Synchronizer) AddItem(ctx context.Context, name string, threshold float64) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.AddItem(name, threshold, s.opts.NamePolicy)
	})
}

// RenameArea renames the area at index
func (s *Synchronizer) RenameArea(ctx context.Context, index int, name string) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.RenameArea(index, name, s.opts.NamePolicy)
	})
}

// RenameItem renames the item at index
func (s *Synchronizer) RenameItem(ctx context.Context, index int, name string) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.RenameItem(index, name, s.opts.NamePolicy)
	})
}

// MoveArea reorders areas, carrying the column along
func (s *Synchronizer) MoveArea(ctx context.Context, from, to int) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.MoveArea(from, to)
	})
}

// MoveItem reorders items, carrying the row along
func (s *Synchronizer) MoveItem(ctx context.Context, from, to int) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		return st.MoveItem(from, to)
	})
}

// RemovalPrompt describes what a removal would discard
type RemovalPrompt struct {
	Name    string
	Message string
	// ReassignTargets lists area indexes the column may be moved into
	ReassignTargets []int
	Total           int
	// Required is true when the removal discards units and must be confirmed
	Required bool
}

// RemoveAreaOptions controls RemoveArea
type RemoveAreaOptions struct {
	// ReassignTo adds the removed column into this area (pre-removal index)
	ReassignTo *int
	Confirmed  bool
}

// AreaRemoval builds the confirmation prompt for removing the area at index
func (s *Synchronizer) AreaRemoval(index int) (RemovalPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return RemovalPrompt{}, ErrNotLoaded
	}
	return areaRemoval(s.state, index)
}

// ItemRemoval builds the confirmation prompt for removing the item at index
func (s *Synchronizer) ItemRemoval(index int) (RemovalPrompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return RemovalPrompt{}, ErrNotLoaded
	}
	return itemRemoval(s.state, index)
}

func areaRemoval(st models.InventoryState, index int) (RemovalPrompt, error) {
	if index < 0 || index >= len(st.Areas) {
		return RemovalPrompt{}, fmt.Errorf("%w: area %d", models.ErrIndexOutOfRange, index)
	}

	p := RemovalPrompt{
		Name:            st.Areas[index],
		Total:           st.ColumnTotal(index),
		ReassignTargets: []int{},
	}
	for i := range st.Areas {
		if i != index {
			p.ReassignTargets = append(p.ReassignTargets, i)
		}
	}
	p.Required = p.Total > 0
	if p.Required {
		p.Message = fmt.Sprintf("Remove area %q? It holds %d units that will be discarded unless reassigned.", p.Name, p.Total)
	} else {
		p.Message = fmt.Sprintf("Remove area %q? It is empty.", p.Name)
	}
	return p, nil
}

func itemRemoval(st models.InventoryState, index int) (RemovalPrompt, error) {
	if index < 0 || index >= len(st.Items) {
		return RemovalPrompt{}, fmt.Errorf("%w: item %d", models.ErrIndexOutOfRange, index)
	}

	p := RemovalPrompt{
		Name:  st.Items[index].Name,
		Total: st.RowTotal(index),
	}
	p.Required = p.Total > 0
	if p.Required {
		p.Message = fmt.Sprintf("Remove item %q? %d units across all areas will be discarded.", p.Name, p.Total)
	} else {
		p.Message = fmt.Sprintf("Remove item %q? It has no stock.", p.Name)
	}
	return p, nil
}

// RemoveArea deletes an area column, optionally reassigning its quantities.
// A column holding units requires opts.Confirmed.
func (s *Synchronizer) RemoveArea(ctx context.Context, index int, opts RemoveAreaOptions) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		prompt, err := areaRemoval(st, index)
		if err != nil {
			return st, err
		}
		if prompt.Required && !opts.Confirmed {
			return st, fmt.Errorf("%w: %s", ErrNotConfirmed, prompt.Message)
		}
		return st.RemoveArea(index, opts.ReassignTo)
	})
}

// RemoveItem deletes an item row. A row holding units requires confirmed.
func (s *Synchronizer) RemoveItem(ctx context.Context, index int, confirmed bool) error {
	return s.mutate(ctx, s.opts.StructuralFlush, func(st models.InventoryState) (models.InventoryState, error) {
		prompt, err := itemRemoval(st, index)
		if err != nil {
			return st, err
		}
		if prompt.Required && !confirmed {
			return st, fmt.Errorf("%w: %s", ErrNotConfirmed, prompt.Message)
		}
		return st.RemoveItem(index)
	})
}
