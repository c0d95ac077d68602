package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server = "https://inventory.example.com"
api_key = "secret"
doc = "hotel"
debounce = "250ms"
quantity_flush = "immediate"
history_kind = "snapshot"
history_limit = 3
delete_policy = "yesno"
area_case_sensitive = false
ignore_own_echoes = true
low_stock_rule = "qty == 0"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://inventory.example.com", cfg.Server)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "hotel", cfg.Document)
	// Не заданные в файле значения остаются по умолчанию
	assert.Equal(t, Default().DB, cfg.DB)
	assert.Equal(t, "immediate", cfg.StructuralFlush)

	opts, err := cfg.SyncOptions()
	require.NoError(t, err)
	assert.Equal(t, "hotel", opts.DocumentID)
	assert.Equal(t, 250*time.Millisecond, opts.DebounceWindow)
	assert.Equal(t, sync.FlushImmediate, opts.QuantityFlush)
	assert.Equal(t, sync.FlushImmediate, opts.StructuralFlush)
	assert.Equal(t, models.HistoryKindSnapshot, opts.HistoryKind)
	assert.Equal(t, 3, opts.HistoryLimit)
	assert.Equal(t, sync.DeleteYesNo, opts.DeletePolicy)
	assert.False(t, opts.NamePolicy.AreaCaseSensitive)
	assert.True(t, opts.IgnoreOwnEchoes)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad toml", body: `server = `},
		{name: "bad debounce", body: `debounce = "soon"`},
		{name: "bad flush mode", body: `quantity_flush = "sometimes"`},
		{name: "bad history kind", body: `history_kind = "weekly"`},
		{name: "bad delete policy", body: `delete_policy = "never"`},
		{name: "bad rule", body: `low_stock_rule = "qty +"`},
		{name: "empty server", body: `server = " "`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDefault_SyncOptions(t *testing.T) {
	opts, err := Default().SyncOptions()
	require.NoError(t, err)

	assert.Equal(t, sync.DefaultDocumentID, opts.DocumentID)
	assert.Equal(t, sync.DefaultDebounceWindow, opts.DebounceWindow)
	assert.Equal(t, sync.FlushDebounced, opts.QuantityFlush)
	assert.Equal(t, sync.FlushImmediate, opts.StructuralFlush)
	assert.Equal(t, models.HistoryKindArea, opts.HistoryKind)
	assert.Equal(t, sync.DeleteTyped, opts.DeletePolicy)
	assert.True(t, opts.NamePolicy.AreaCaseSensitive)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/stock/cache.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "stock/cache.db"), got)

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config/stocktake/config.toml"), got)

	got, err = ExpandPath("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}
