// Package sync keeps the in-memory inventory state, the local cache and the
// remote document in step: optimistic local edits, debounced or immediate
// remote writes through a single writer, history saves and realtime updates.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/stocktake/internal/client/api"
	"github.com/iudanet/stocktake/internal/client/storage"
	"github.com/iudanet/stocktake/internal/models"
)

// Source tells where Load took the state or history from
type Source string

const (
	SourceRemote  Source = "remote"
	SourceCache   Source = "cache"
	SourceDefault Source = "default"
)

// LoadResult reports the outcome of Load
type LoadResult struct {
	// RemoteErr holds the reason the remote state was not used, if any
	RemoteErr     error
	Source        Source
	HistorySource Source
}

// Status is a point-in-time view of synchronization progress
type Status struct {
	LastSyncedAt  time.Time
	LastError     error
	PendingWrites int
	// Dirty is true while a local mutation has not been confirmed by the server
	Dirty   bool
	Syncing bool
}

// Synchronizer owns the inventory state of one client process
type Synchronizer struct {
	remote httpClient.ClientAPI
	cache  storage.CacheStorage
	logger *slog.Logger
	now    func() time.Time

	// baseCtx используется для отложенных записей, не привязанных к вызову
	baseCtx    context.Context
	baseCancel context.CancelFunc

	wake       chan struct{}
	writerDone chan struct{}

	subCancel context.CancelFunc
	subDone   chan struct{}

	state    models.InventoryState
	history  []models.HistoryRecord
	selected *models.HistoryRecord
	queue    []writeRequest
	lastErr  error
	timer    *time.Timer

	opts Options

	lastSyncedAt time.Time

	// revision растет на каждую локальную мутацию, confirmed - последняя подтвержденная сервером
	revision  uint64
	confirmed uint64
	timerGen  uint64

	mu gosync.Mutex

	loaded   bool
	closed   bool
	stopping bool
	inflight bool
}

// New creates a Synchronizer and starts its writer goroutine.
// Call Load before any other operation and Close when done.
func New(remote httpClient.ClientAPI, cache storage.CacheStorage, opts Options) *Synchronizer {
	opts = opts.withDefaults()
	if opts.Origin == "" {
		opts.Origin = uuid.NewString()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Synchronizer{
		remote:     remote,
		cache:      cache,
		logger:     opts.Logger,
		now:        time.Now,
		baseCtx:    ctx,
		baseCancel: cancel,
		wake:       make(chan struct{}, 1),
		writerDone: make(chan struct{}),
		opts:       opts,
	}

	go s.runWriter()

	return s
}

// Origin returns the token this process tags its writes with
func (s *Synchronizer) Origin() string {
	return s.opts.Origin
}

// Options returns the effective options
func (s *Synchronizer) Options() Options {
	return s.opts
}

// Load resolves the initial state: remote document, then local cache, then
// the default seed. The history list is resolved the same way.
func (s *Synchronizer) Load(ctx context.Context) (LoadResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return LoadResult{}, ErrClosed
	}
	s.mu.Unlock()

	var result LoadResult

	if at, err := s.cache.GetLastSyncedAt(ctx); err == nil {
		s.mu.Lock()
		s.lastSyncedAt = at
		s.mu.Unlock()
	}

	state, pushDefault := s.loadState(ctx, &result)

	s.mu.Lock()
	s.state = state
	s.loaded = true
	s.revision++
	s.confirmed = s.revision
	s.mu.Unlock()

	if pushDefault {
		// Начальное состояние создается на сервере без ожидания очереди записи
		if err := s.remote.PutState(ctx, s.opts.DocumentID, state); err != nil {
			s.logger.Warn("Failed to seed remote state with defaults", "error", err)
			s.mu.Lock()
			s.confirmed = 0
			s.lastErr = err
			s.mu.Unlock()
		} else {
			s.markSynced(ctx)
		}
	}

	history, source := s.loadHistory(ctx)
	result.HistorySource = source

	s.mu.Lock()
	s.history = history
	s.mu.Unlock()

	s.logger.Info("Inventory loaded",
		"source", result.Source,
		"history_source", result.HistorySource,
		"areas", len(state.Areas),
		"items", len(state.Items))

	s.emitChange(state)
	return result, nil
}

// loadState returns the resolved state and whether the default seed must be pushed
func (s *Synchronizer) loadState(ctx context.Context, result *LoadResult) (models.InventoryState, bool) {
	doc, err := s.remote.GetState(ctx, s.opts.DocumentID)
	if err == nil {
		result.Source = SourceRemote
		if cerr := s.cache.SaveState(ctx, doc.State); cerr != nil {
			s.logger.Warn("Failed to write state to local cache", "error", cerr)
		}
		s.markSynced(ctx)
		return doc.State, false
	}

	result.RemoteErr = err
	if errors.Is(err, httpClient.ErrNotFound) {
		s.logger.Info("Remote state document does not exist yet", "document_id", s.opts.DocumentID)
	} else {
		s.logger.Warn("Remote state unavailable, falling back to local cache", "error", err)
	}

	cached, cerr := s.cache.GetState(ctx)
	if cerr == nil {
		result.Source = SourceCache
		return cached, false
	}
	if !errors.Is(cerr, storage.ErrCacheMiss) {
		s.logger.Warn("Ignoring unusable local cache", "error", cerr)
	}

	result.Source = SourceDefault
	state := models.DefaultState()
	if cerr := s.cache.SaveState(ctx, state); cerr != nil {
		s.logger.Warn("Failed to write state to local cache", "error", cerr)
	}
	return state, true
}

func (s *Synchronizer) loadHistory(ctx context.Context) ([]models.HistoryRecord, Source) {
	records, err := s.remote.ListHistory(ctx, s.opts.HistoryKind, s.opts.HistoryLimit)
	if err == nil {
		if cerr := s.cache.SaveHistory(ctx, records); cerr != nil {
			s.logger.Warn("Failed to write history to local cache", "error", cerr)
		}
		return records, SourceRemote
	}
	s.logger.Warn("Remote history unavailable, falling back to local cache", "error", err)

	cached, cerr := s.cache.GetHistory(ctx)
	if cerr == nil {
		return cached, SourceCache
	}
	return []models.HistoryRecord{}, SourceDefault
}

// State returns a copy of the current state
func (s *Synchronizer) State() models.InventoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// History returns a copy of the loaded history list, newest first
func (s *Synchronizer) History() []models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HistoryRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Status returns the current synchronization status
func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := len(s.queue)
	if s.inflight {
		pending++
	}
	return Status{
		LastSyncedAt:  s.lastSyncedAt,
		LastError:     s.lastErr,
		PendingWrites: pending,
		Dirty:         s.confirmed < s.revision,
		Syncing:       s.inflight,
	}
}

// Close stops the debounce timer, flushes a pending debounced write, cancels
// the realtime subscription and waits for the writer to drain.
func (s *Synchronizer) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	pendingDebounce := s.stopTimerLocked()
	if pendingDebounce && s.loaded {
		s.enqueueLocked(s.baseCtx, nil)
	}
	s.stopping = true
	subCancel, subDone := s.subCancel, s.subDone
	s.mu.Unlock()
	s.signal()

	if subCancel != nil {
		subCancel()
		<-subDone
	}

	var err error
	select {
	case <-s.writerDone:
	case <-ctx.Done():
		err = fmt.Errorf("close: %w", ctx.Err())
	}
	s.baseCancel()

	if err == nil {
		s.mu.Lock()
		if s.confirmed < s.revision && s.lastErr != nil {
			err = fmt.Errorf("unsynced changes remain: %w", s.lastErr)
		}
		s.mu.Unlock()
	}
	return err
}

func (s *Synchronizer) emitChange(state models.InventoryState) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(state.Clone())
	}
}

func (s *Synchronizer) markSynced(ctx context.Context) {
	at := s.now()
	s.mu.Lock()
	s.lastSyncedAt = at
	s.lastErr = nil
	s.mu.Unlock()

	if err := s.cache.SaveLastSyncedAt(ctx, at); err != nil {
		s.logger.Warn("Failed to save last sync time", "error", err)
	}
}
