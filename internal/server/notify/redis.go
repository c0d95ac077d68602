package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/iudanet/stocktake/pkg/api"
)

// ChannelPrefix prefixes the per-document Redis channel name
const ChannelPrefix = "stocktake:changes:"

// RedisBroker relays change events through Redis pub/sub so that every server
// instance behind a load balancer notifies its own SSE subscribers.
// Local delivery happens only after the event comes back from Redis.
type RedisBroker struct {
	client *redis.Client
	hub    *Hub
	logger *slog.Logger
}

// NewRedisBroker creates a broker on top of an existing Redis client
func NewRedisBroker(client *redis.Client, logger *slog.Logger) *RedisBroker {
	return &RedisBroker{
		client: client,
		hub:    NewHub(logger),
		logger: logger,
	}
}

// Channel returns the Redis channel used for the document
func Channel(documentID string) string {
	return ChannelPrefix + documentID
}

// Publish sends the event to the document channel
func (b *RedisBroker) Publish(ctx context.Context, event api.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(event.DocumentID), payload).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Subscribe registers a local subscriber; Run must be running for it to receive events
func (b *RedisBroker) Subscribe(ctx context.Context, documentID string) (<-chan api.ChangeEvent, func()) {
	return b.hub.Subscribe(ctx, documentID)
}

// Run listens on all document channels and dispatches to local subscribers
// until ctx is cancelled.
func (b *RedisBroker) Run(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, ChannelPrefix+"*")
	defer func() {
		_ = pubsub.Close()
	}()

	// Ждем подтверждения подписки, чтобы не потерять первые события
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe: %w", err)
	}

	b.logger.Info("Redis change relay started", "pattern", ChannelPrefix+"*")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var event api.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn("Skipping malformed change event", "channel", msg.Channel, "error", err)
				continue
			}
			if event.DocumentID == "" {
				event.DocumentID = strings.TrimPrefix(msg.Channel, ChannelPrefix)
			}
			b.hub.dispatch(event)
		}
	}
}
