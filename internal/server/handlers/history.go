package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/server/storage"
	"github.com/iudanet/stocktake/internal/validation"
	"github.com/iudanet/stocktake/pkg/api"
)

// HistoryHandler serves snapshot and area inventory history tables
type HistoryHandler struct {
	logger  *slog.Logger
	storage storage.HistoryStorage
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(logger *slog.Logger, storage storage.HistoryStorage) *HistoryHandler {
	return &HistoryHandler{
		logger:  logger,
		storage: storage,
	}
}

// ListSnapshots обрабатывает GET /api/v1/snapshots?limit=N
func (h *HistoryHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	records, ok := h.list(w, r, models.HistoryKindSnapshot)
	if !ok {
		return
	}

	out := make([]api.Snapshot, 0, len(records))
	for _, rec := range records {
		out = append(out, api.SnapshotFromRecord(rec))
	}
	sendJSON(h.logger, w, out, http.StatusOK)
}

// CreateSnapshot обрабатывает POST /api/v1/snapshots
func (h *HistoryHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req api.CreateSnapshotRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode snapshot request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := req.Data.ToState()
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, ok := h.insert(w, r, models.NewSnapshotRecord(req.Title, state))
	if !ok {
		return
	}
	sendJSON(h.logger, w, api.SnapshotFromRecord(*rec), http.StatusCreated)
}

// DeleteSnapshot обрабатывает DELETE /api/v1/snapshots/{id}
func (h *HistoryHandler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, models.HistoryKindSnapshot)
}

// ListAreaInventories обрабатывает GET /api/v1/area-inventories?limit=N
func (h *HistoryHandler) ListAreaInventories(w http.ResponseWriter, r *http.Request) {
	records, ok := h.list(w, r, models.HistoryKindArea)
	if !ok {
		return
	}

	out := make([]api.AreaInventory, 0, len(records))
	for _, rec := range records {
		out = append(out, api.AreaInventoryFromRecord(rec))
	}
	sendJSON(h.logger, w, out, http.StatusOK)
}

// CreateAreaInventory обрабатывает POST /api/v1/area-inventories
func (h *HistoryHandler) CreateAreaInventory(w http.ResponseWriter, r *http.Request) {
	var req api.CreateAreaInventoryRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode area inventory request", "error", err)
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	areaName, err := validation.NormalizeName(req.AreaName)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	date, err := validation.ParseInventoryDate(req.InventoryDate)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, ok := h.insert(w, r, models.HistoryRecord{
		Kind:          models.HistoryKindArea,
		AreaName:      areaName,
		AreaIndex:     req.AreaIndex,
		InventoryDate: date,
		Items:         api.ToAreaItems(req.Items),
	})
	if !ok {
		return
	}
	sendJSON(h.logger, w, api.AreaInventoryFromRecord(*rec), http.StatusCreated)
}

// DeleteAreaInventory обрабатывает DELETE /api/v1/area-inventories/{id}
func (h *HistoryHandler) DeleteAreaInventory(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, models.HistoryKindArea)
}

func (h *HistoryHandler) list(w http.ResponseWriter, r *http.Request, kind models.HistoryKind) ([]models.HistoryRecord, bool) {
	limit, err := parseLimit(r)
	if err != nil {
		sendError(h.logger, w, "invalid limit parameter", http.StatusBadRequest)
		return nil, false
	}

	records, err := h.storage.ListRecords(r.Context(), kind, limit)
	if err != nil {
		h.logger.Error("Failed to list history", "error", err, "kind", kind)
		sendError(h.logger, w, "failed to read history", http.StatusInternalServerError)
		return nil, false
	}
	return records, true
}

func (h *HistoryHandler) insert(w http.ResponseWriter, r *http.Request, rec models.HistoryRecord) (*models.HistoryRecord, bool) {
	if err := validateRecord(rec); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	saved, err := h.storage.InsertRecord(r.Context(), rec)
	if err != nil {
		h.logger.Error("Failed to insert history record", "error", err, "kind", rec.Kind)
		sendError(h.logger, w, "failed to write history", http.StatusInternalServerError)
		return nil, false
	}

	h.logger.Info("History record created", "kind", saved.Kind, "id", saved.ID)
	return saved, true
}

func (h *HistoryHandler) delete(w http.ResponseWriter, r *http.Request, kind models.HistoryKind) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		sendError(h.logger, w, "invalid record id", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeleteRecord(r.Context(), kind, id); err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			sendError(h.logger, w, "history record not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to delete history record", "error", err, "kind", kind, "id", id)
		sendError(h.logger, w, "failed to delete history record", http.StatusInternalServerError)
		return
	}

	h.logger.Info("History record deleted", "kind", kind, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// validateRecord проверяет входящую запись истории перед вставкой
func validateRecord(rec models.HistoryRecord) error {
	switch rec.Kind {
	case models.HistoryKindSnapshot:
		if rec.Data == nil {
			return models.ErrMalformedState
		}
		return rec.Data.Validate()
	case models.HistoryKindArea:
		if rec.AreaIndex < 0 {
			return models.ErrIndexOutOfRange
		}
		return nil
	default:
		return storage.ErrUnknownKind
	}
}
