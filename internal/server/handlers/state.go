package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/stocktake/internal/server/notify"
	"github.com/iudanet/stocktake/internal/server/storage"
	"github.com/iudanet/stocktake/pkg/api"
)

// StateHandler serves the single shared inventory document
type StateHandler struct {
	logger  *slog.Logger
	storage storage.StateStorage
	broker  notify.Broker
}

// NewStateHandler creates a new state handler
func NewStateHandler(logger *slog.Logger, storage storage.StateStorage, broker notify.Broker) *StateHandler {
	return &StateHandler{
		logger:  logger,
		storage: storage,
		broker:  broker,
	}
}

// Get обрабатывает GET /api/v1/state/{id}
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "document id is required", http.StatusBadRequest)
		return
	}

	doc, err := h.storage.GetState(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrStateNotFound) {
			sendError(h.logger, w, "state document not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to get state", "error", err, "document_id", id)
		sendError(h.logger, w, "failed to read state", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.StateDocument{
		UpdatedAt: doc.UpdatedAt,
		ID:        doc.ID,
		Data:      api.FromState(doc.State),
	}, http.StatusOK)
}

// Put обрабатывает PUT /api/v1/state/{id}
// Полностью заменяет документ и уведомляет подписчиков
func (h *StateHandler) Put(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		sendError(h.logger, w, "document id is required", http.StatusBadRequest)
		return
	}

	var data api.InventoryData
	if err := decodeBody(w, r, &data); err != nil {
		h.logger.Warn("Failed to decode state body", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := data.ToState()
	if err != nil {
		h.logger.Warn("Rejected malformed state", "error", err, "document_id", id)
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	doc, created, err := h.storage.UpsertState(ctx, id, state)
	if err != nil {
		h.logger.Error("Failed to upsert state", "error", err, "document_id", id)
		sendError(h.logger, w, "failed to write state", http.StatusInternalServerError)
		return
	}

	op := api.OpUpdate
	if created {
		op = api.OpInsert
	}
	event := api.ChangeEvent{
		At:         time.Now().UTC(),
		DocumentID: id,
		Op:         op,
		Origin:     r.Header.Get(api.HeaderOrigin),
	}
	// Ошибка уведомления не отменяет уже выполненную запись
	if err := h.broker.Publish(ctx, event); err != nil {
		h.logger.Error("Failed to publish change event", "error", err, "document_id", id)
	}

	h.logger.Info("State written",
		"document_id", id,
		"op", op,
		"areas", len(state.Areas),
		"items", len(state.Items))

	sendJSON(h.logger, w, api.StateDocument{
		UpdatedAt: doc.UpdatedAt,
		ID:        doc.ID,
		Data:      api.FromState(doc.State),
	}, http.StatusOK)
}
