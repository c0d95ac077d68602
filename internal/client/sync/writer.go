package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stocktake/internal/models"
)

// writeRequest is one full-document upsert waiting in the write queue
type writeRequest struct {
	ctx      context.Context
	done     chan error
	state    models.InventoryState
	revision uint64
}

// signal будит writer без блокировки
func (s *Synchronizer) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// enqueueLocked ставит в очередь запись текущего состояния; s.mu должен быть захвачен
func (s *Synchronizer) enqueueLocked(ctx context.Context, done chan error) {
	s.queue = append(s.queue, writeRequest{
		ctx:      ctx,
		done:     done,
		state:    s.state.Clone(),
		revision: s.revision,
	})
}

// stopTimerLocked отменяет ожидающую отложенную запись и сообщает, была ли она
func (s *Synchronizer) stopTimerLocked() bool {
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	s.timerGen++
	return true
}

// scheduleLocked (пере)запускает окно debounce
func (s *Synchronizer) scheduleLocked() {
	s.stopTimerLocked()
	gen := s.timerGen
	s.timer = time.AfterFunc(s.opts.DebounceWindow, func() {
		s.debounceFired(gen)
	})
}

func (s *Synchronizer) debounceFired(gen uint64) {
	s.mu.Lock()
	if gen != s.timerGen || s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.enqueueLocked(s.baseCtx, nil)
	s.mu.Unlock()
	s.signal()
}

// flushNow cancels any pending debounce and writes the current state,
// waiting behind writes already queued. It returns the state that was written.
func (s *Synchronizer) flushNow(ctx context.Context) (models.InventoryState, error) {
	done := make(chan error, 1)

	s.mu.Lock()
	if s.stopping {
		s.mu.Unlock()
		return models.InventoryState{}, ErrClosed
	}
	s.stopTimerLocked()
	s.enqueueLocked(ctx, done)
	written := s.queue[len(s.queue)-1].state
	s.mu.Unlock()
	s.signal()

	select {
	case err := <-done:
		return written, err
	case <-ctx.Done():
		return written, ctx.Err()
	}
}

// Retry immediately writes the current state, e.g. after a failed debounced write
func (s *Synchronizer) Retry(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	s.mu.Unlock()

	if _, err := s.flushNow(ctx); err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	return nil
}

// runWriter выполняет записи строго по одной в порядке постановки в очередь
func (s *Synchronizer) runWriter() {
	defer close(s.writerDone)

	for {
		s.mu.Lock()
		for len(s.queue) == 0 {
			if s.stopping {
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
			<-s.wake
			s.mu.Lock()
		}
		req := s.queue[0]
		s.queue = s.queue[1:]
		s.inflight = true
		s.mu.Unlock()

		s.write(req)
	}
}

func (s *Synchronizer) write(req writeRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, s.opts.WriteTimeout)
	err := s.remote.PutState(ctx, s.opts.DocumentID, req.state)
	cancel()

	s.mu.Lock()
	s.inflight = false
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Warn("Remote write failed", "error", err, "revision", req.revision)
	} else {
		if req.revision > s.confirmed {
			s.confirmed = req.revision
		}
		current := req.revision == s.revision
		if current {
			// Кэш уже содержит это состояние, но запись подтверждает его как синхронизированное
			if cerr := s.cache.SaveState(s.baseCtx, req.state); cerr != nil {
				s.logger.Warn("Failed to write state to local cache", "error", cerr)
			}
		}
		s.mu.Unlock()
		s.markSynced(s.baseCtx)
		s.logger.Debug("Remote write confirmed", "revision", req.revision)
	}

	if req.done != nil {
		req.done <- err
	}
}
