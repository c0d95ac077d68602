package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/server/handlers"
	"github.com/iudanet/stocktake/internal/server/notify"
	"github.com/iudanet/stocktake/internal/server/storage/sqlite"
	"github.com/iudanet/stocktake/pkg/api"
)

// setupServer поднимает настоящий сервер поверх sqlite в памяти
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hub := notify.NewHub(logger)
	mux := http.NewServeMux()
	handlers.Routes{
		Health:  handlers.NewHealthHandler(logger, store, "test"),
		State:   handlers.NewStateHandler(logger, store, hub),
		Events:  handlers.NewEventsHandler(logger, hub),
		History: handlers.NewHistoryHandler(logger, store),
	}.Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestIntegration_StateRoundTrip(t *testing.T) {
	srv := setupServer(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.GetState(ctx, "main")
	require.ErrorIs(t, err, ErrNotFound)

	state, err := models.DefaultState().SetQuantity(0, 0, 3)
	require.NoError(t, err)
	require.NoError(t, client.PutState(ctx, "main", state))

	doc, err := client.GetState(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, state, doc.State)
}

func TestIntegration_HistoryRoundTrip(t *testing.T) {
	srv := setupServer(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	rec, err := models.NewAreaRecord(models.DefaultState(), 0, "2024-01-15")
	require.NoError(t, err)
	saved, err := client.InsertHistory(ctx, rec)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	snap, err := client.InsertHistory(ctx, models.NewSnapshotRecord("weekly", models.DefaultState()))
	require.NoError(t, err)
	require.NotNil(t, snap.Data)

	areas, err := client.ListHistory(ctx, models.HistoryKindArea, 20)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Kitchen", areas[0].AreaName)
	assert.Equal(t, "2024-01-15", areas[0].InventoryDate)

	require.NoError(t, client.DeleteHistory(ctx, models.HistoryKindArea, saved.ID))
	assert.ErrorIs(t, client.DeleteHistory(ctx, models.HistoryKindArea, saved.ID), ErrNotFound)

	snaps, err := client.ListHistory(ctx, models.HistoryKindSnapshot, 5)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "weekly", snaps[0].Title)
}

func TestIntegration_Subscribe(t *testing.T) {
	srv := setupServer(t)
	writer := NewClient(srv.URL, WithOrigin("writer"))
	reader := NewClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan api.ChangeEvent, 4)
	done := make(chan error, 1)
	go func() {
		done <- reader.Subscribe(ctx, "main", func(ev api.ChangeEvent) {
			select {
			case events <- ev:
			default:
			}
		})
	}()

	// подписка устанавливается асинхронно: пишем, пока событие не придет
	deadline := time.After(5 * time.Second)
	for {
		require.NoError(t, writer.PutState(context.Background(), "main", models.DefaultState()))
		select {
		case ev := <-events:
			assert.Equal(t, "main", ev.DocumentID)
			assert.Equal(t, "writer", ev.Origin)
			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(3 * time.Second):
				t.Fatal("subscribe did not return after cancel")
			}
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change event received")
		}
	}
}
