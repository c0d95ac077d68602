package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/client/iocli"
	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/lowstock"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// capture собирает вывод IOMock
type capture struct {
	b  strings.Builder
	mu gosync.Mutex
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.b.String()
}

func newTestIO(interactive bool, answers ...string) (*iocli.IOMock, *capture) {
	out := &capture{}
	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.mu.Lock()
			defer out.mu.Unlock()
			out.b.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			out.mu.Lock()
			defer out.mu.Unlock()
			out.b.WriteString(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			out.mu.Lock()
			defer out.mu.Unlock()
			return out.b.Write(p)
		},
		IsInteractiveFunc: func() bool { return interactive },
		ReadInputFunc: func(prompt string) (string, error) {
			if len(answers) == 0 {
				return "", iocli.ErrNoInput
			}
			answer := answers[0]
			answers = answers[1:]
			return answer, nil
		},
	}
	return mockIO, out
}

func testState() models.InventoryState {
	return models.InventoryState{
		Areas: []string{"Kitchen", "Spa"},
		Items: []models.Item{
			{Name: "Broom", Threshold: 2},
			{Name: "Towels", Threshold: 10},
		},
		Quantities: [][]int{{1, 0}, {6, 5}},
	}
}

func newTestInventory() *InventoryMock {
	opts := sync.DefaultOptions()
	opts.Origin = "test-origin"
	st := testState()
	return &InventoryMock{
		StateFunc:   func() models.InventoryState { return st.Clone() },
		OptionsFunc: func() sync.Options { return opts },
		StatusFunc:  func() sync.Status { return sync.Status{} },
		HistoryFunc: func() []models.HistoryRecord { return nil },
	}
}

func newTestCli(t *testing.T, inv Inventory, stdio iocli.IO) *Cli {
	t.Helper()
	rule, err := lowstock.Compile("")
	require.NoError(t, err)
	c := New(stdio, inv, rule)
	c.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestRun_UnknownCommand(t *testing.T) {
	mockIO, out := newTestIO(false)
	c := newTestCli(t, newTestInventory(), mockIO)

	err := c.Run(t.Context(), "frobnicate", nil)
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "save-area <area> [YYYY-MM-DD]")
}

func TestRun_UsageError(t *testing.T) {
	mockIO, _ := newTestIO(false)
	c := newTestCli(t, newTestInventory(), mockIO)

	err := c.Run(t.Context(), "set", []string{"Broom"})
	require.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "stocktake set <item> <area>")
}

func TestShow(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.StatusFunc = func() sync.Status {
		return sync.Status{LastSyncedAt: time.Now().Add(-2 * time.Minute)}
	}
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "show", nil))

	text := out.String()
	assert.Contains(t, text, "Kitchen")
	assert.Contains(t, text, "Broom *")
	assert.NotContains(t, text, "Towels *")
	assert.Contains(t, text, "12")
	assert.Contains(t, text, "below threshold")
	assert.Contains(t, text, "Synced 2 minutes ago")
}

func TestShow_Empty(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.StateFunc = func() models.InventoryState { return models.InventoryState{} }
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "show", nil))
	assert.Contains(t, out.String(), "Inventory is empty")
}

func TestShow_UnsavedWarning(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.StatusFunc = func() sync.Status {
		return sync.Status{Dirty: true, LastError: errors.New("connection refused")}
	}
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "show", nil))
	assert.Contains(t, out.String(), "Not saved to server: connection refused")
}

func TestLow(t *testing.T) {
	mockIO, out := newTestIO(false)
	c := newTestCli(t, newTestInventory(), mockIO)

	require.NoError(t, c.Run(t.Context(), "low", nil))
	assert.Contains(t, out.String(), "1 item(s) running low")
	assert.Contains(t, out.String(), "Broom")
	assert.NotContains(t, out.String(), "Towels")
}

func TestStatus(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.StatusFunc = func() sync.Status {
		return sync.Status{
			Dirty:         true,
			PendingWrites: 2,
			LastError:     errors.New("timeout"),
			LastSyncedAt:  time.Now().Add(-3 * time.Hour),
		}
	}
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "status", nil))

	text := out.String()
	assert.Contains(t, text, "Document:      main")
	assert.Contains(t, text, "test-origin")
	assert.Contains(t, text, "unsaved changes")
	assert.Contains(t, text, "2 write(s)")
	assert.Contains(t, text, "3 hours ago")
	assert.Contains(t, text, "Last error:    timeout")
}

func TestSet(t *testing.T) {
	tests := []struct {
		wantErr string
		name    string
		args    []string
		item    int
		area    int
		qty     int
	}{
		{name: "by name", args: []string{"Towels", "Spa", "7"}, item: 1, area: 1, qty: 7},
		{name: "item name ignores case", args: []string{"broom", "Kitchen", "3"}, item: 0, area: 0, qty: 3},
		{name: "by number", args: []string{"2", "1", "9"}, item: 1, area: 0, qty: 9},
		{name: "relative increase", args: []string{"Towels", "Kitchen", "+4"}, item: 1, area: 0, qty: 10},
		{name: "relative decrease", args: []string{"Towels", "Spa", "-2"}, item: 1, area: 1, qty: 3},
		{name: "unknown item", args: []string{"Mop", "Spa", "1"}, wantErr: `unknown item "Mop"`},
		{name: "unknown area", args: []string{"Broom", "Garage", "1"}, wantErr: `unknown area "Garage"`},
		{name: "bad quantity", args: []string{"Broom", "Spa", "lots"}, wantErr: "invalid quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, _ := newTestIO(false)
			inv := newTestInventory()
			inv.SetQuantityFunc = func(ctx context.Context, item, area, qty int) error {
				return nil
			}
			c := newTestCli(t, inv, mockIO)

			err := c.Run(t.Context(), "set", tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, inv.SetQuantityCalls())
				return
			}
			require.NoError(t, err)

			calls := inv.SetQuantityCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.item, calls[0].Item)
			assert.Equal(t, tt.area, calls[0].Area)
			assert.Equal(t, tt.qty, calls[0].Qty)
		})
	}
}

func TestSet_PropagatesError(t *testing.T) {
	mockIO, _ := newTestIO(false)
	inv := newTestInventory()
	inv.SetQuantityFunc = func(ctx context.Context, item, area, qty int) error {
		return models.ErrIndexOutOfRange
	}
	c := newTestCli(t, inv, mockIO)

	err := c.Run(t.Context(), "set", []string{"Broom", "Spa", "1"})
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}

func TestStructuralCommands(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.AddAreaFunc = func(ctx context.Context, name string) error { return nil }
	inv.AddItemFunc = func(ctx context.Context, name string, threshold float64) error { return nil }
	inv.RenameAreaFunc = func(ctx context.Context, index int, name string) error { return nil }
	inv.RenameItemFunc = func(ctx context.Context, index int, name string) error { return nil }
	inv.MoveAreaFunc = func(ctx context.Context, from, to int) error { return nil }
	inv.MoveItemFunc = func(ctx context.Context, from, to int) error { return nil }
	inv.SetThresholdFunc = func(ctx context.Context, item int, threshold float64) error { return nil }
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "add-area", []string{"Laundry", "Room"}))
	require.Len(t, inv.AddAreaCalls(), 1)
	assert.Equal(t, "Laundry Room", inv.AddAreaCalls()[0].Name)

	require.NoError(t, c.Run(t.Context(), "add-item", []string{"Soap", "1.5"}))
	require.Len(t, inv.AddItemCalls(), 1)
	assert.InDelta(t, 1.5, inv.AddItemCalls()[0].Threshold, 0.0001)

	require.Error(t, c.Run(t.Context(), "add-item", []string{"Soap", "many"}))

	require.NoError(t, c.Run(t.Context(), "rename-area", []string{"Spa", "Pool"}))
	require.Len(t, inv.RenameAreaCalls(), 1)
	assert.Equal(t, 1, inv.RenameAreaCalls()[0].Index)

	require.NoError(t, c.Run(t.Context(), "rename-item", []string{"Towels", "Linen"}))
	assert.Equal(t, 1, inv.RenameItemCalls()[0].Index)

	require.NoError(t, c.Run(t.Context(), "move-area", []string{"Spa", "1"}))
	assert.Equal(t, 1, inv.MoveAreaCalls()[0].From)
	assert.Equal(t, 0, inv.MoveAreaCalls()[0].To)

	require.Error(t, c.Run(t.Context(), "move-item", []string{"Broom", "5"}))
	require.NoError(t, c.Run(t.Context(), "move-item", []string{"Broom", "2"}))
	assert.Equal(t, 1, inv.MoveItemCalls()[0].To)

	require.NoError(t, c.Run(t.Context(), "threshold", []string{"Broom", "4"}))
	assert.InDelta(t, 4.0, inv.SetThresholdCalls()[0].Threshold, 0.0001)

	assert.Contains(t, out.String(), `✓ Area "Laundry Room" added`)
	assert.Contains(t, out.String(), `✓ Area "Spa" renamed to "Pool"`)
}

func TestRemoveItem(t *testing.T) {
	prompt := sync.RemovalPrompt{Name: "Towels", Total: 11, Required: true, Message: `Remove item "Towels"? 11 units across all areas will be discarded.`}

	tests := []struct {
		wantErr     error
		name        string
		args        []string
		answers     []string
		interactive bool
		wantRemoved bool
	}{
		{name: "non-interactive refused", args: []string{"Towels"}, wantErr: sync.ErrNotConfirmed},
		{name: "yes flag", args: []string{"Towels", "--yes"}, wantRemoved: true},
		{name: "interactive yes", args: []string{"Towels"}, interactive: true, answers: []string{"y"}, wantRemoved: true},
		{name: "interactive no", args: []string{"Towels"}, interactive: true, answers: []string{"n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO(tt.interactive, tt.answers...)
			inv := newTestInventory()
			inv.ItemRemovalFunc = func(index int) (sync.RemovalPrompt, error) {
				assert.Equal(t, 1, index)
				return prompt, nil
			}
			inv.RemoveItemFunc = func(ctx context.Context, index int, confirmed bool) error {
				assert.True(t, confirmed)
				return nil
			}
			c := newTestCli(t, inv, mockIO)

			err := c.Run(t.Context(), "remove-item", tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "11")
			} else {
				require.NoError(t, err)
			}

			if tt.wantRemoved {
				assert.Len(t, inv.RemoveItemCalls(), 1)
			} else {
				assert.Empty(t, inv.RemoveItemCalls())
			}
			if tt.interactive {
				require.Len(t, mockIO.ReadInputCalls(), 1)
				assert.Contains(t, mockIO.ReadInputCalls()[0].Prompt, "11")
			}
			if tt.interactive && !tt.wantRemoved {
				assert.Contains(t, out.String(), "Cancelled.")
			}
		})
	}
}

func TestRemoveArea(t *testing.T) {
	t.Run("reassign needs no prompt", func(t *testing.T) {
		mockIO, out := newTestIO(false)
		inv := newTestInventory()
		inv.AreaRemovalFunc = func(index int) (sync.RemovalPrompt, error) {
			return sync.RemovalPrompt{Name: "Kitchen", Total: 7, Required: true, ReassignTargets: []int{1}}, nil
		}
		inv.RemoveAreaFunc = func(ctx context.Context, index int, opts sync.RemoveAreaOptions) error {
			return nil
		}
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "remove-area", []string{"Kitchen", "--into", "Spa"}))

		calls := inv.RemoveAreaCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 0, calls[0].Index)
		require.NotNil(t, calls[0].Opts.ReassignTo)
		assert.Equal(t, 1, *calls[0].Opts.ReassignTo)
		assert.True(t, calls[0].Opts.Confirmed)
		assert.Contains(t, out.String(), `7 units moved to "Spa"`)
	})

	t.Run("discard requires confirmation", func(t *testing.T) {
		mockIO, _ := newTestIO(false)
		inv := newTestInventory()
		inv.AreaRemovalFunc = func(index int) (sync.RemovalPrompt, error) {
			return sync.RemovalPrompt{Name: "Kitchen", Total: 7, Required: true, Message: "holds 7 units"}, nil
		}
		c := newTestCli(t, inv, mockIO)

		err := c.Run(t.Context(), "remove-area", []string{"Kitchen"})
		require.ErrorIs(t, err, sync.ErrNotConfirmed)
		assert.Empty(t, inv.RemoveAreaCalls())
	})

	t.Run("empty area", func(t *testing.T) {
		mockIO, _ := newTestIO(false)
		inv := newTestInventory()
		inv.AreaRemovalFunc = func(index int) (sync.RemovalPrompt, error) {
			return sync.RemovalPrompt{Name: "Spa"}, nil
		}
		inv.RemoveAreaFunc = func(ctx context.Context, index int, opts sync.RemoveAreaOptions) error {
			return nil
		}
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "remove-area", []string{"2"}))
		require.Len(t, inv.RemoveAreaCalls(), 1)
		assert.Nil(t, inv.RemoveAreaCalls()[0].Opts.ReassignTo)
	})
}

func TestSaveArea(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		args     []string
		wantDate string
	}{
		{name: "defaults to today", args: []string{"Kitchen"}, wantDate: "2024-01-15"},
		{name: "explicit date", args: []string{"Kitchen", "2024-01-10"}, wantDate: "2024-01-10"},
		{name: "future date refused", args: []string{"Kitchen", "2024-01-16"}, wantErr: ErrFutureDate},
		{name: "bad date", args: []string{"Kitchen", "yesterday"}, wantErr: validation.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO(false)
			inv := newTestInventory()
			inv.SaveAreaFunc = func(ctx context.Context, areaIndex int, date string) (models.HistoryRecord, error) {
				return models.HistoryRecord{
					ID:            4,
					Kind:          models.HistoryKindArea,
					AreaName:      "Kitchen",
					InventoryDate: date,
					Items:         []models.AreaItem{{Name: "Broom", Qty: 1}, {Name: "Towels", Qty: 6}},
				}, nil
			}
			c := newTestCli(t, inv, mockIO)

			err := c.Run(t.Context(), "save-area", tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, inv.SaveAreaCalls())
				return
			}
			require.NoError(t, err)

			calls := inv.SaveAreaCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, 0, calls[0].AreaIndex)
			assert.Equal(t, tt.wantDate, calls[0].Date)
			assert.Contains(t, out.String(), "7 units, record #4")
		})
	}
}

func TestSnapshot(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.SaveSnapshotFunc = func(ctx context.Context, title string) (sync.SnapshotResult, error) {
		return sync.SnapshotResult{
			Record:    models.HistoryRecord{ID: 9, Kind: models.HistoryKindSnapshot, Title: title},
			ExportErr: errors.New("disk full"),
		}, nil
	}
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "snapshot", []string{"End", "of", "week"}))
	assert.Equal(t, "End of week", inv.SaveSnapshotCalls()[0].Title)
	assert.Contains(t, out.String(), `Snapshot "End of week" saved (record #9)`)
	assert.Contains(t, out.String(), "export failed: disk full")
}

func TestHistory(t *testing.T) {
	records := []models.HistoryRecord{
		{
			ID:            2,
			Kind:          models.HistoryKindArea,
			AreaName:      "Kitchen",
			InventoryDate: "2024-01-15",
			CreatedAt:     time.Now().Add(-time.Hour),
			Items:         []models.AreaItem{{Name: "Broom", Qty: 3}},
		},
	}

	t.Run("list", func(t *testing.T) {
		mockIO, out := newTestIO(false)
		inv := newTestInventory()
		inv.RefreshHistoryFunc = func(ctx context.Context) ([]models.HistoryRecord, error) {
			return records, nil
		}
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "history", nil))
		assert.Contains(t, out.String(), "Kitchen")
		assert.Contains(t, out.String(), "2024-01-15")
		assert.Contains(t, out.String(), "1 hour ago")
	})

	t.Run("list falls back to loaded records", func(t *testing.T) {
		mockIO, out := newTestIO(false)
		inv := newTestInventory()
		inv.RefreshHistoryFunc = func(ctx context.Context) ([]models.HistoryRecord, error) {
			return nil, errors.New("offline")
		}
		inv.HistoryFunc = func() []models.HistoryRecord { return records }
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "history", nil))
		assert.Contains(t, out.String(), "Could not refresh history: offline")
		assert.Contains(t, out.String(), "Kitchen")
	})

	t.Run("empty", func(t *testing.T) {
		mockIO, out := newTestIO(false)
		inv := newTestInventory()
		inv.RefreshHistoryFunc = func(ctx context.Context) ([]models.HistoryRecord, error) {
			return []models.HistoryRecord{}, nil
		}
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "history", nil))
		assert.Contains(t, out.String(), "No area inventories yet")
	})

	t.Run("detail", func(t *testing.T) {
		mockIO, out := newTestIO(false)
		inv := newTestInventory()
		inv.SelectHistoryFunc = func(kind models.HistoryKind, id int64) (models.HistoryRecord, error) {
			assert.Equal(t, models.HistoryKindArea, kind)
			assert.Equal(t, int64(2), id)
			return records[0], nil
		}
		c := newTestCli(t, inv, mockIO)

		require.NoError(t, c.Run(t.Context(), "history", []string{"2"}))
		assert.Contains(t, out.String(), `Area "Kitchen" on 2024-01-15 (#2)`)
		assert.Contains(t, out.String(), "Broom")
	})

	t.Run("detail bad id", func(t *testing.T) {
		mockIO, _ := newTestIO(false)
		c := newTestCli(t, newTestInventory(), mockIO)
		assert.Error(t, c.Run(t.Context(), "history", []string{"abc"}))
	})
}

func TestDeleteHistory(t *testing.T) {
	tests := []struct {
		wantErr     error
		name        string
		args        []string
		answers     []string
		wantAnswer  string
		interactive bool
		wantCall    bool
	}{
		{name: "confirm flag", args: []string{"3", "--confirm", "DELETE"}, wantCall: true, wantAnswer: "DELETE"},
		{name: "confirm flag with equals", args: []string{"3", "--confirm=DELETE"}, wantCall: true, wantAnswer: "DELETE"},
		{name: "interactive prompt", args: []string{"3"}, interactive: true, answers: []string{"DELETE"}, wantCall: true, wantAnswer: "DELETE"},
		{name: "non-interactive without confirm", args: []string{"3"}, wantErr: sync.ErrNotConfirmed},
		{name: "missing value", args: []string{"3", "--confirm"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO(tt.interactive, tt.answers...)
			inv := newTestInventory()
			inv.DeleteHistoryFunc = func(ctx context.Context, kind models.HistoryKind, id int64, confirmation string) error {
				if confirmation != sync.DeletePhrase {
					return sync.ErrNotConfirmed
				}
				return nil
			}
			c := newTestCli(t, inv, mockIO)

			err := c.Run(t.Context(), "delete-history", tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, inv.DeleteHistoryCalls())
				return
			}
			require.NoError(t, err)

			calls := inv.DeleteHistoryCalls()
			require.Len(t, calls, 1)
			assert.Equal(t, int64(3), calls[0].ID)
			assert.Equal(t, tt.wantAnswer, calls[0].Confirmation)
			assert.Contains(t, out.String(), "Record #3 deleted")
			if tt.interactive {
				assert.Contains(t, mockIO.ReadInputCalls()[0].Prompt, "Type DELETE")
			}
		})
	}
}

func TestDeleteHistory_WrongAnswerCancels(t *testing.T) {
	mockIO, out := newTestIO(true, "delete")
	inv := newTestInventory()
	inv.DeleteHistoryFunc = func(ctx context.Context, kind models.HistoryKind, id int64, confirmation string) error {
		return sync.ErrNotConfirmed
	}
	c := newTestCli(t, inv, mockIO)

	require.NoError(t, c.Run(t.Context(), "delete-history", []string{"3"}))
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestWatch(t *testing.T) {
	mockIO, out := newTestIO(false)
	inv := newTestInventory()
	inv.SubscribeFunc = func(ctx context.Context) error { return nil }
	c := newTestCli(t, inv, mockIO)

	// До watch изменения не печатаются
	c.OnChange(testState())
	assert.Empty(t, out.String())

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, "watch", nil)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Watching for changes")
	}, time.Second, 5*time.Millisecond)

	changed := testState()
	changed.Areas[1] = "Pool"
	c.OnChange(changed)
	assert.Contains(t, out.String(), "Pool")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Len(t, inv.SubscribeCalls(), 1)
}

func TestExtractFlags(t *testing.T) {
	tests := []struct {
		wantFlags map[string]string
		name      string
		args      []string
		valued    []string
		wantPos   []string
		wantErr   bool
	}{
		{
			name:      "switch after positional",
			args:      []string{"Spa", "--yes"},
			wantPos:   []string{"Spa"},
			wantFlags: map[string]string{"yes": "true"},
		},
		{
			name:      "valued option",
			args:      []string{"--into", "Kitchen", "Spa"},
			valued:    []string{"into"},
			wantPos:   []string{"Spa"},
			wantFlags: map[string]string{"into": "Kitchen"},
		},
		{
			name:    "missing value",
			args:    []string{"Spa", "--into"},
			valued:  []string{"into"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, flags, err := extractFlags(tt.args, tt.valued...)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantFlags, flags)
		})
	}
}
