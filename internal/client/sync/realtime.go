package sync

import (
	"context"
	"errors"
	"time"

	httpClient "github.com/iudanet/stocktake/internal/client/api"
	"github.com/iudanet/stocktake/pkg/api"
)

// ErrAlreadySubscribed indicates that Subscribe was called twice
var ErrAlreadySubscribed = errors.New("already subscribed to changes")

// Параметры переподключения к потоку событий
const (
	minReconnectDelay = time.Second
	maxReconnectDelay = 30 * time.Second
)

// Subscribe starts following server change events in the background. Each
// event re-reads the document and overwrites the local state and cache.
// The subscription ends when ctx is cancelled or the Synchronizer is closed.
func (s *Synchronizer) Subscribe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.subCancel != nil {
		return ErrAlreadySubscribed
	}

	subCtx, cancel := context.WithCancel(ctx)
	s.subCancel = cancel
	s.subDone = make(chan struct{})

	go s.follow(subCtx, s.subDone)

	return nil
}

func (s *Synchronizer) follow(ctx context.Context, done chan struct{}) {
	defer close(done)

	delay := minReconnectDelay
	for {
		received := false
		err := s.remote.Subscribe(ctx, s.opts.DocumentID, func(ev api.ChangeEvent) {
			received = true
			s.handleEvent(ctx, ev)
		})
		if ctx.Err() != nil {
			return
		}
		if received {
			delay = minReconnectDelay
		}

		s.logger.Warn("Change stream interrupted, reconnecting",
			"error", err,
			"delay", delay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, maxReconnectDelay)
	}
}

func (s *Synchronizer) handleEvent(ctx context.Context, ev api.ChangeEvent) {
	if ev.DocumentID != "" && ev.DocumentID != s.opts.DocumentID {
		return
	}
	if s.opts.IgnoreOwnEchoes && ev.Origin == s.opts.Origin {
		s.logger.Debug("Skipping own change event", "op", ev.Op)
		return
	}

	doc, err := s.remote.GetState(ctx, s.opts.DocumentID)
	if err != nil {
		if !errors.Is(err, httpClient.ErrNotFound) && ctx.Err() == nil {
			s.logger.Warn("Failed to re-read state after change event", "error", err)
		}
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	// Удаленное состояние побеждает: отложенная локальная запись отменяется
	s.stopTimerLocked()
	s.state = doc.State
	s.revision++
	s.confirmed = s.revision
	s.mu.Unlock()

	if err := s.cache.SaveState(ctx, doc.State); err != nil {
		s.logger.Warn("Failed to write state to local cache", "error", err)
	}
	s.markSynced(ctx)

	s.logger.Debug("Applied remote change", "op", ev.Op, "origin", ev.Origin)
	s.emitChange(doc.State)
}
