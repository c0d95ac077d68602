package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

func TestSetQuantity_DebounceCoalesces(t *testing.T) {
	env := setupLoaded(t, testOptions())

	for qty := 1; qty <= 5; qty++ {
		require.NoError(t, env.sync.SetQuantity(t.Context(), 1, 1, qty))
	}

	// Локальное состояние обновляется сразу
	assert.Equal(t, 5, env.sync.State().Quantities[1][1])
	assert.True(t, env.sync.Status().Dirty)

	require.Eventually(t, func() bool {
		return len(env.remote.writes()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	writes := env.remote.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, 5, writes[0].Quantities[1][1])

	require.Eventually(t, func() bool {
		return !env.sync.Status().Dirty
	}, time.Second, 5*time.Millisecond)

	cached, ok := env.cache.cachedState()
	require.True(t, ok)
	assert.Equal(t, 5, cached.Quantities[1][1])
}

func TestSetQuantity_NegativeClamped(t *testing.T) {
	opts := testOptions()
	opts.QuantityFlush = FlushImmediate
	env := setupLoaded(t, opts)

	require.NoError(t, env.sync.SetQuantity(t.Context(), 0, 0, -4))

	writes := env.remote.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, 0, writes[0].Quantities[0][0])
	assert.False(t, env.sync.Status().Dirty)
}

func TestStructuralEdits_Immediate(t *testing.T) {
	tests := []struct {
		apply func(s *Synchronizer) error
		check func(t *testing.T, st models.InventoryState)
		name  string
	}{
		{
			name:  "add area",
			apply: func(s *Synchronizer) error { return s.AddArea(t.Context(), "  Laundry ") },
			check: func(t *testing.T, st models.InventoryState) {
				assert.Equal(t, []string{"Kitchen", "Spa", "Laundry"}, st.Areas)
				assert.Equal(t, []int{5, 3, 0}, st.Quantities[0])
			},
		},
		{
			name:  "add item",
			apply: func(s *Synchronizer) error { return s.AddItem(t.Context(), "Soap", 1.5) },
			check: func(t *testing.T, st models.InventoryState) {
				require.Len(t, st.Items, 3)
				assert.Equal(t, models.Item{Name: "Soap", Threshold: 1.5}, st.Items[2])
				assert.Equal(t, []int{0, 0}, st.Quantities[2])
			},
		},
		{
			name:  "rename area",
			apply: func(s *Synchronizer) error { return s.RenameArea(t.Context(), 1, "Pool") },
			check: func(t *testing.T, st models.InventoryState) {
				assert.Equal(t, []string{"Kitchen", "Pool"}, st.Areas)
			},
		},
		{
			name:  "rename item",
			apply: func(s *Synchronizer) error { return s.RenameItem(t.Context(), 0, "Mop") },
			check: func(t *testing.T, st models.InventoryState) {
				assert.Equal(t, "Mop", st.Items[0].Name)
			},
		},
		{
			name:  "move area",
			apply: func(s *Synchronizer) error { return s.MoveArea(t.Context(), 0, 1) },
			check: func(t *testing.T, st models.InventoryState) {
				assert.Equal(t, []string{"Spa", "Kitchen"}, st.Areas)
				assert.Equal(t, []int{3, 5}, st.Quantities[0])
			},
		},
		{
			name:  "move item",
			apply: func(s *Synchronizer) error { return s.MoveItem(t.Context(), 1, 0) },
			check: func(t *testing.T, st models.InventoryState) {
				assert.Equal(t, "Towels", st.Items[0].Name)
				assert.Equal(t, []int{4, 0}, st.Quantities[0])
			},
		},
		{
			name:  "set threshold",
			apply: func(s *Synchronizer) error { return s.SetThreshold(t.Context(), 1, 12) },
			check: func(t *testing.T, st models.InventoryState) {
				assert.InDelta(t, 12.0, st.Items[1].Threshold, 0.0001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupLoaded(t, testOptions())

			require.NoError(t, tt.apply(env.sync))

			// Запись выполнена до возврата управления
			writes := env.remote.writes()
			require.Len(t, writes, 1)
			tt.check(t, writes[0])
			tt.check(t, env.sync.State())
			assert.False(t, env.sync.Status().Dirty)
		})
	}
}

func TestStructuralEdits_ValidationBeforeIO(t *testing.T) {
	tests := []struct {
		apply   func(s *Synchronizer) error
		wantErr error
		name    string
	}{
		{
			name:    "empty area name",
			apply:   func(s *Synchronizer) error { return s.AddArea(t.Context(), "   ") },
			wantErr: validation.ErrEmptyName,
		},
		{
			name:    "duplicate area",
			apply:   func(s *Synchronizer) error { return s.AddArea(t.Context(), "Spa") },
			wantErr: models.ErrDuplicateName,
		},
		{
			name:    "duplicate item ignores case",
			apply:   func(s *Synchronizer) error { return s.AddItem(t.Context(), "broom", 0) },
			wantErr: models.ErrDuplicateName,
		},
		{
			name:    "rename out of range",
			apply:   func(s *Synchronizer) error { return s.RenameItem(t.Context(), 9, "X") },
			wantErr: models.ErrIndexOutOfRange,
		},
		{
			name:    "quantity out of range",
			apply:   func(s *Synchronizer) error { return s.SetQuantity(t.Context(), 0, 5, 1) },
			wantErr: models.ErrIndexOutOfRange,
		},
		{
			name:    "negative threshold",
			apply:   func(s *Synchronizer) error { return s.SetThreshold(t.Context(), 0, -1) },
			wantErr: models.ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupLoaded(t, testOptions())
			saves := len(env.cacheMock.SaveStateCalls())

			err := tt.apply(env.sync)
			require.ErrorIs(t, err, tt.wantErr)

			assert.Equal(t, sampleState(), env.sync.State())
			assert.Empty(t, env.remote.writes())
			assert.Len(t, env.cacheMock.SaveStateCalls(), saves)
			assert.False(t, env.sync.Status().Dirty)
		})
	}
}

func TestAreaCaseInsensitivePolicy(t *testing.T) {
	opts := testOptions()
	opts.NamePolicy = validation.NamePolicy{AreaCaseSensitive: false}
	env := setupLoaded(t, opts)

	err := env.sync.AddArea(t.Context(), "SPA")
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	sensitive := setupLoaded(t, testOptions())
	require.NoError(t, sensitive.sync.AddArea(t.Context(), "SPA"))
}

func TestImmediateFlushCancelsDebounce(t *testing.T) {
	env := setupLoaded(t, testOptions())

	require.NoError(t, env.sync.SetQuantity(t.Context(), 0, 1, 9))
	require.NoError(t, env.sync.AddItem(t.Context(), "Soap", 0))

	writes := env.remote.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, 9, writes[0].Quantities[0][1])
	assert.Len(t, writes[0].Items, 3)

	time.Sleep(150 * time.Millisecond)
	assert.Len(t, env.remote.writes(), 1)
	assert.False(t, env.sync.Status().Dirty)
}

func TestWriteFailure_KeepsLocalStateAndRetry(t *testing.T) {
	env := setupLoaded(t, testOptions())
	env.remote.setPutErr(errOffline)

	err := env.sync.AddArea(t.Context(), "Laundry")
	require.ErrorIs(t, err, errOffline)

	// Оптимистичное изменение не откатывается
	assert.Equal(t, []string{"Kitchen", "Spa", "Laundry"}, env.sync.State().Areas)

	status := env.sync.Status()
	assert.True(t, status.Dirty)
	assert.ErrorIs(t, status.LastError, errOffline)
	assert.Zero(t, status.PendingWrites)

	cached, ok := env.cache.cachedState()
	require.True(t, ok)
	assert.Equal(t, []string{"Kitchen", "Spa", "Laundry"}, cached.Areas)

	env.remote.setPutErr(nil)
	require.NoError(t, env.sync.Retry(t.Context()))

	status = env.sync.Status()
	assert.False(t, status.Dirty)
	assert.NoError(t, status.LastError)

	writes := env.remote.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, []string{"Kitchen", "Spa", "Laundry"}, writes[0].Areas)
}

func TestWritesArriveInMutationOrder(t *testing.T) {
	opts := testOptions()
	opts.QuantityFlush = FlushImmediate
	env := setupLoaded(t, opts)

	for qty := 1; qty <= 4; qty++ {
		require.NoError(t, env.sync.SetQuantity(t.Context(), 0, 0, qty))
	}

	writes := env.remote.writes()
	require.Len(t, writes, 4)
	for i, w := range writes {
		assert.Equal(t, i+1, w.Quantities[0][0])
	}
}

func TestItemRemoval_RequiresConfirmation(t *testing.T) {
	st := models.InventoryState{
		Areas:      []string{"Kitchen", "Spa"},
		Items:      []models.Item{{Name: "Broom", Threshold: 2}},
		Quantities: [][]int{{5, 3}},
	}
	env := setupSync(t, &st, testOptions())
	_, err := env.sync.Load(t.Context())
	require.NoError(t, err)

	prompt, err := env.sync.ItemRemoval(0)
	require.NoError(t, err)
	assert.Equal(t, "Broom", prompt.Name)
	assert.Equal(t, 8, prompt.Total)
	assert.True(t, prompt.Required)
	assert.Contains(t, prompt.Message, "8")

	err = env.sync.RemoveItem(t.Context(), 0, false)
	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, env.sync.State().Items, 1)
	assert.Empty(t, env.remote.writes())

	require.NoError(t, env.sync.RemoveItem(t.Context(), 0, true))
	got := env.sync.State()
	assert.Empty(t, got.Items)
	assert.Empty(t, got.Quantities)
	assert.Equal(t, []string{"Kitchen", "Spa"}, got.Areas)
	require.Len(t, env.remote.writes(), 1)
}

func TestItemRemoval_EmptyRowNoConfirmation(t *testing.T) {
	env := setupLoaded(t, testOptions())
	require.NoError(t, env.sync.SetQuantity(t.Context(), 1, 0, 0))

	prompt, err := env.sync.ItemRemoval(1)
	require.NoError(t, err)
	assert.False(t, prompt.Required)
	assert.Zero(t, prompt.Total)

	require.NoError(t, env.sync.RemoveItem(t.Context(), 1, false))
	assert.Len(t, env.sync.State().Items, 1)
}

func TestAreaRemoval(t *testing.T) {
	t.Run("discard requires confirmation", func(t *testing.T) {
		env := setupLoaded(t, testOptions())

		prompt, err := env.sync.AreaRemoval(0)
		require.NoError(t, err)
		assert.Equal(t, 9, prompt.Total)
		assert.True(t, prompt.Required)
		assert.Contains(t, prompt.Message, "9")
		assert.Equal(t, []int{1}, prompt.ReassignTargets)

		err = env.sync.RemoveArea(t.Context(), 0, RemoveAreaOptions{})
		require.ErrorIs(t, err, ErrNotConfirmed)

		require.NoError(t, env.sync.RemoveArea(t.Context(), 0, RemoveAreaOptions{Confirmed: true}))
		got := env.sync.State()
		assert.Equal(t, []string{"Spa"}, got.Areas)
		assert.Equal(t, [][]int{{3}, {0}}, got.Quantities)
	})

	t.Run("reassign preserves total", func(t *testing.T) {
		env := setupLoaded(t, testOptions())
		before := env.sync.State().GrandTotal()

		dest := 1
		require.NoError(t, env.sync.RemoveArea(t.Context(), 0, RemoveAreaOptions{Confirmed: true, ReassignTo: &dest}))

		got := env.sync.State()
		assert.Equal(t, []string{"Spa"}, got.Areas)
		assert.Equal(t, [][]int{{8}, {4}}, got.Quantities)
		assert.Equal(t, before, got.GrandTotal())
	})

	t.Run("single area only discard", func(t *testing.T) {
		st := models.InventoryState{
			Areas:      []string{"Kitchen"},
			Items:      []models.Item{{Name: "Broom"}},
			Quantities: [][]int{{2}},
		}
		env := setupSync(t, &st, testOptions())
		_, err := env.sync.Load(t.Context())
		require.NoError(t, err)

		prompt, err := env.sync.AreaRemoval(0)
		require.NoError(t, err)
		assert.Empty(t, prompt.ReassignTargets)

		dest := 0
		err = env.sync.RemoveArea(t.Context(), 0, RemoveAreaOptions{Confirmed: true, ReassignTo: &dest})
		require.ErrorIs(t, err, models.ErrInvalidReassign)
		assert.Equal(t, st, env.sync.State())

		require.NoError(t, env.sync.RemoveArea(t.Context(), 0, RemoveAreaOptions{Confirmed: true}))
		got := env.sync.State()
		assert.Empty(t, got.Areas)
		assert.Equal(t, [][]int{{}}, got.Quantities)
	})

	t.Run("empty column needs no confirmation", func(t *testing.T) {
		env := setupLoaded(t, testOptions())
		require.NoError(t, env.sync.AddArea(t.Context(), "Laundry"))

		prompt, err := env.sync.AreaRemoval(2)
		require.NoError(t, err)
		assert.False(t, prompt.Required)

		require.NoError(t, env.sync.RemoveArea(t.Context(), 2, RemoveAreaOptions{}))
		assert.Equal(t, []string{"Kitchen", "Spa"}, env.sync.State().Areas)
	})

	t.Run("out of range", func(t *testing.T) {
		env := setupLoaded(t, testOptions())
		_, err := env.sync.AreaRemoval(5)
		assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
	})
}

func TestOnChange_CalledForEveryMutation(t *testing.T) {
	var got []models.InventoryState
	opts := testOptions()
	opts.OnChange = func(st models.InventoryState) { got = append(got, st) }
	env := setupLoaded(t, opts)

	require.NoError(t, env.sync.AddArea(t.Context(), "Laundry"))
	require.NoError(t, env.sync.RenameArea(t.Context(), 2, "Wash"))

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Kitchen", "Spa", "Wash"}, got[2].Areas)

	// Слушатель получает копию
	got[2].Areas[0] = "changed"
	assert.Equal(t, "Kitchen", env.sync.State().Areas[0])
}
