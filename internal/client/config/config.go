// Package config loads client settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/iudanet/stocktake/internal/client/sync"
	"github.com/iudanet/stocktake/internal/lowstock"
	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// DefaultPath is used when no --config flag is given
const DefaultPath = "~/.config/stocktake/config.toml"

// ErrInvalidConfig indicates a value that cannot be used
var ErrInvalidConfig = errors.New("invalid config")

// Config holds client settings. Durations use Go syntax ("700ms").
type Config struct {
	Server          string `toml:"server"`
	APIKey          string `toml:"api_key"`
	DB              string `toml:"db"`
	Document        string `toml:"doc"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
	Debounce        string `toml:"debounce"`
	QuantityFlush   string `toml:"quantity_flush"`
	StructuralFlush string `toml:"structural_flush"`
	HistoryKind     string `toml:"history_kind"`
	DeletePolicy    string `toml:"delete_policy"`
	LowStockRule    string `toml:"low_stock_rule"`
	ExportDir       string `toml:"export_dir"`
	HistoryLimit    int    `toml:"history_limit"`

	AreaCaseSensitive bool `toml:"area_case_sensitive"`
	IgnoreOwnEchoes   bool `toml:"ignore_own_echoes"`
}

// Default returns the settings used when the file is missing
func Default() Config {
	return Config{
		Server:            "http://localhost:8080",
		DB:                "~/.local/share/stocktake/cache.db",
		Document:          sync.DefaultDocumentID,
		LogFile:           "~/.local/share/stocktake/client.log",
		LogLevel:          "info",
		Debounce:          sync.DefaultDebounceWindow.String(),
		QuantityFlush:     sync.FlushDebounced.String(),
		StructuralFlush:   sync.FlushImmediate.String(),
		HistoryKind:       string(models.HistoryKindArea),
		DeletePolicy:      string(sync.DeleteTyped),
		LowStockRule:      lowstock.DefaultRule,
		ExportDir:         "~/.local/share/stocktake/exports",
		AreaCaseSensitive: true,
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := ExpandPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	// Отсутствующие в файле ключи сохраняют значения по умолчанию
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and durations
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server) == "" {
		return fmt.Errorf("%w: server is required", ErrInvalidConfig)
	}
	if _, err := c.DebounceWindow(); err != nil {
		return err
	}
	if _, ok := sync.ParseFlushMode(c.QuantityFlush); !ok {
		return fmt.Errorf("%w: quantity_flush %q", ErrInvalidConfig, c.QuantityFlush)
	}
	if _, ok := sync.ParseFlushMode(c.StructuralFlush); !ok {
		return fmt.Errorf("%w: structural_flush %q", ErrInvalidConfig, c.StructuralFlush)
	}
	if !models.HistoryKind(c.HistoryKind).Valid() {
		return fmt.Errorf("%w: history_kind %q", ErrInvalidConfig, c.HistoryKind)
	}
	switch sync.DeletePolicy(c.DeletePolicy) {
	case sync.DeleteTyped, sync.DeleteYesNo:
	default:
		return fmt.Errorf("%w: delete_policy %q", ErrInvalidConfig, c.DeletePolicy)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must not be negative", ErrInvalidConfig)
	}
	if _, err := lowstock.Compile(c.LowStockRule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DebounceWindow parses the debounce duration
func (c Config) DebounceWindow() (time.Duration, error) {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: debounce %q", ErrInvalidConfig, c.Debounce)
	}
	return d, nil
}

// SyncOptions translates the settings into synchronizer options.
// Logger, OnChange, Exporter and Origin are left for the caller.
func (c Config) SyncOptions() (sync.Options, error) {
	if err := c.Validate(); err != nil {
		return sync.Options{}, err
	}

	opts := sync.DefaultOptions()
	opts.DocumentID = c.Document
	opts.HistoryKind = models.HistoryKind(c.HistoryKind)
	opts.DeletePolicy = sync.DeletePolicy(c.DeletePolicy)
	opts.HistoryLimit = c.HistoryLimit
	opts.NamePolicy = validation.NamePolicy{AreaCaseSensitive: c.AreaCaseSensitive}
	opts.IgnoreOwnEchoes = c.IgnoreOwnEchoes
	opts.DebounceWindow, _ = c.DebounceWindow()
	opts.QuantityFlush, _ = sync.ParseFlushMode(c.QuantityFlush)
	opts.StructuralFlush, _ = sync.ParseFlushMode(c.StructuralFlush)

	return opts, nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
// An empty path means DefaultPath.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
