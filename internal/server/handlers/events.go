package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/stocktake/internal/server/notify"
)

// keepAliveInterval период отправки SSE комментариев для удержания соединения
const keepAliveInterval = 15 * time.Second

// EventsHandler streams change events of a state document as Server-Sent Events
type EventsHandler struct {
	logger    *slog.Logger
	broker    notify.Broker
	keepAlive time.Duration
}

// NewEventsHandler creates a new SSE handler
func NewEventsHandler(logger *slog.Logger, broker notify.Broker) *EventsHandler {
	return &EventsHandler{
		logger:    logger,
		broker:    broker,
		keepAlive: keepAliveInterval,
	}
}

// Stream обрабатывает GET /api/v1/state/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "document id is required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		sendError(h.logger, w, "streaming is not supported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	events, cancel := h.broker.Subscribe(ctx, id)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": subscribed\n\n")
	flusher.Flush()

	h.logger.Info("Realtime subscriber connected", "document_id", id, "remote_addr", r.RemoteAddr)
	defer h.logger.Info("Realtime subscriber disconnected", "document_id", id, "remote_addr", r.RemoteAddr)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to encode change event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
