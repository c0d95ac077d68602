package sync

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// SnapshotResult reports the outcome of SaveSnapshot
type SnapshotResult struct {
	// ExportErr is set when the spreadsheet export failed; the snapshot itself may still be saved
	ExportErr  error
	ExportPath string
	Record     models.HistoryRecord
}

// SaveArea persists the full state, then records the area column as a dated
// inventory and refreshes the area history list.
func (s *Synchronizer) SaveArea(ctx context.Context, areaIndex int, date string) (models.HistoryRecord, error) {
	date, err := validation.ParseInventoryDate(date)
	if err != nil {
		return models.HistoryRecord{}, err
	}

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return models.HistoryRecord{}, ErrNotLoaded
	}
	if areaIndex < 0 || areaIndex >= len(s.state.Areas) {
		n := len(s.state.Areas)
		s.mu.Unlock()
		return models.HistoryRecord{}, fmt.Errorf("%w: area %d (have %d)", models.ErrIndexOutOfRange, areaIndex, n)
	}
	s.mu.Unlock()

	persisted, err := s.flushNow(ctx)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("save inventory: %w", err)
	}

	rec, err := models.NewAreaRecord(persisted, areaIndex, date)
	if err != nil {
		return models.HistoryRecord{}, err
	}

	saved, err := s.remote.InsertHistory(ctx, rec)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("save area inventory: %w", err)
	}

	s.logger.Info("Area inventory saved",
		"area", saved.AreaName,
		"date", saved.InventoryDate,
		"total", saved.Total())

	if s.opts.HistoryKind == models.HistoryKindArea {
		records, lerr := s.remote.ListHistory(ctx, models.HistoryKindArea, s.opts.HistoryLimit)
		if lerr != nil {
			s.logger.Warn("Failed to refresh area history, using local list", "error", lerr)
			s.mu.Lock()
			records = models.PrependHistory(s.history, *saved, s.opts.HistoryLimit)
			s.mu.Unlock()
		}
		s.replaceHistory(ctx, records)
	}

	return *saved, nil
}

// SaveSnapshot persists the full state, exports a spreadsheet copy and
// records a titled snapshot of the whole inventory.
func (s *Synchronizer) SaveSnapshot(ctx context.Context, title string) (SnapshotResult, error) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return SnapshotResult{}, ErrNotLoaded
	}
	s.mu.Unlock()

	title = strings.TrimSpace(title)
	if title == "" {
		title = s.now().Format("2006-01-02 15:04")
	}

	persisted, err := s.flushNow(ctx)
	if err != nil {
		return SnapshotResult{}, fmt.Errorf("save inventory: %w", err)
	}

	var result SnapshotResult
	if s.opts.Exporter != nil {
		path, eerr := s.opts.Exporter.Export(ctx, persisted)
		if eerr != nil {
			s.logger.Warn("Spreadsheet export failed", "error", eerr)
			result.ExportErr = eerr
		} else {
			result.ExportPath = path
		}
	}

	saved, err := s.remote.InsertHistory(ctx, models.NewSnapshotRecord(title, persisted))
	if err != nil {
		return result, fmt.Errorf("save snapshot: %w", err)
	}
	result.Record = *saved

	s.logger.Info("Snapshot saved", "title", saved.Title, "id", saved.ID)

	if s.opts.HistoryKind == models.HistoryKindSnapshot {
		s.mu.Lock()
		records := models.PrependHistory(s.history, *saved, s.opts.HistoryLimit)
		s.mu.Unlock()
		s.replaceHistory(ctx, records)
	}

	return result, nil
}

// RefreshHistory re-reads the configured history list from the server
func (s *Synchronizer) RefreshHistory(ctx context.Context) ([]models.HistoryRecord, error) {
	records, err := s.remote.ListHistory(ctx, s.opts.HistoryKind, s.opts.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	s.replaceHistory(ctx, records)
	return s.History(), nil
}

// DeleteHistory deletes a history record after checking the confirmation
// answer against the configured delete policy.
func (s *Synchronizer) DeleteHistory(ctx context.Context, kind models.HistoryKind, id int64, confirmation string) error {
	if !s.opts.DeletePolicy.Accepts(confirmation) {
		return ErrNotConfirmed
	}

	if err := s.remote.DeleteHistory(ctx, kind, id); err != nil {
		return fmt.Errorf("delete history record: %w", err)
	}

	s.mu.Lock()
	records := models.RemoveHistory(s.history, kind, id)
	if s.selected != nil && s.selected.Kind == kind && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()
	s.replaceHistory(ctx, records)

	s.logger.Info("History record deleted", "kind", kind, "id", id)
	return nil
}

// SelectHistory opens the detail view of a record from the loaded list
func (s *Synchronizer) SelectHistory(kind models.HistoryKind, id int64) (models.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.history {
		if s.history[i].Kind == kind && s.history[i].ID == id {
			rec := s.history[i]
			s.selected = &rec
			return rec, nil
		}
	}
	return models.HistoryRecord{}, fmt.Errorf("%w: %s %d", ErrRecordNotFound, kind, id)
}

// Selected returns the record currently open in the detail view
func (s *Synchronizer) Selected() (models.HistoryRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.HistoryRecord{}, false
	}
	return *s.selected, true
}

func (s *Synchronizer) replaceHistory(ctx context.Context, records []models.HistoryRecord) {
	s.mu.Lock()
	s.history = records
	s.mu.Unlock()

	if err := s.cache.SaveHistory(ctx, records); err != nil {
		s.logger.Warn("Failed to write history to local cache", "error", err)
	}
}
