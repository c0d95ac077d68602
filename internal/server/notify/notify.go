// Package notify fans change events of the shared inventory document out to
// connected realtime subscribers.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/stocktake/pkg/api"
)

// subscriberBuffer размер буфера канала подписчика
const subscriberBuffer = 16

// Broker publishes change events and hands them to subscribers of a document
type Broker interface {
	Publish(ctx context.Context, event api.ChangeEvent) error
	Subscribe(ctx context.Context, documentID string) (<-chan api.ChangeEvent, func())
}

// Hub is the in-process Broker. Delivery is best effort: a subscriber that
// does not drain its channel loses events rather than blocking publishers.
type Hub struct {
	logger *slog.Logger
	subs   map[string]map[chan api.ChangeEvent]struct{}
	mu     sync.RWMutex
}

// NewHub creates an empty in-process broker
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		subs:   make(map[string]map[chan api.ChangeEvent]struct{}),
	}
}

// Publish delivers the event to every local subscriber of event.DocumentID
func (h *Hub) Publish(_ context.Context, event api.ChangeEvent) error {
	h.dispatch(event)
	return nil
}

func (h *Hub) dispatch(event api.ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[event.DocumentID] {
		select {
		case ch <- event:
		default:
			h.logger.Warn("Subscriber is too slow, dropping change event",
				"document_id", event.DocumentID,
				"op", event.Op,
			)
		}
	}
}

// Subscribe registers a subscriber for the document. The returned cancel func
// unregisters it and closes the channel; it is also invoked when ctx ends.
func (h *Hub) Subscribe(ctx context.Context, documentID string) (<-chan api.ChangeEvent, func()) {
	ch := make(chan api.ChangeEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subs[documentID] == nil {
		h.subs[documentID] = make(map[chan api.ChangeEvent]struct{})
	}
	h.subs[documentID][ch] = struct{}{}
	h.mu.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(stop)
			h.mu.Lock()
			delete(h.subs[documentID], ch)
			if len(h.subs[documentID]) == 0 {
				delete(h.subs, documentID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-stop:
		}
	}()

	return ch, cancel
}

// Subscribers returns the number of active subscribers of the document
func (h *Hub) Subscribers(documentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[documentID])
}
