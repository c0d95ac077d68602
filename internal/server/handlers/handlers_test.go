package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/server/notify"
	"github.com/iudanet/stocktake/internal/server/storage/sqlite"
	"github.com/iudanet/stocktake/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

type testEnv struct {
	mux   *http.ServeMux
	hub   *notify.Hub
	store *sqlite.Storage
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := setupTestLogger()
	hub := notify.NewHub(logger)
	mux := http.NewServeMux()
	Routes{
		Health:  NewHealthHandler(logger, store, "test"),
		State:   NewStateHandler(logger, store, hub),
		Events:  NewEventsHandler(logger, hub),
		History: NewHistoryHandler(logger, store),
	}.Register(mux)

	return &testEnv{mux: mux, hub: hub, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

// failingStorage возвращает ошибку на любую операцию
type failingStorage struct {
	err error
}

func (f *failingStorage) GetState(ctx context.Context, id string) (*models.StateDocument, error) {
	return nil, f.err
}

func (f *failingStorage) UpsertState(ctx context.Context, id string, state models.InventoryState) (*models.StateDocument, bool, error) {
	return nil, false, f.err
}

func (f *failingStorage) InsertRecord(ctx context.Context, rec models.HistoryRecord) (*models.HistoryRecord, error) {
	return nil, f.err
}

func (f *failingStorage) ListRecords(ctx context.Context, kind models.HistoryKind, limit int) ([]models.HistoryRecord, error) {
	return nil, f.err
}

func (f *failingStorage) DeleteRecord(ctx context.Context, kind models.HistoryKind, id int64) error {
	return f.err
}

func (f *failingStorage) Ping(ctx context.Context) error {
	return f.err
}

var errBoom = errors.New("boom")

func sampleData() api.InventoryData {
	return api.InventoryData{
		Areas:      []string{"Kitchen", "Spa"},
		Items:      []api.Item{{Name: "Broom", Threshold: 2}},
		Quantities: [][]int{{3, 5}},
	}
}
