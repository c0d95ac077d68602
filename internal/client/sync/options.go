package sync

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/validation"
)

// FlushMode selects how a mutation reaches the remote store
type FlushMode int

const (
	// FlushDefault resolves to the class default: debounced for quantities,
	// immediate for structural edits
	FlushDefault FlushMode = iota
	// FlushDebounced coalesces rapid mutations into one write after a quiet period
	FlushDebounced
	// FlushImmediate writes before the mutating call returns
	FlushImmediate
)

// String returns the config name of the mode
func (m FlushMode) String() string {
	switch m {
	case FlushImmediate:
		return "immediate"
	case FlushDebounced:
		return "debounced"
	default:
		return "default"
	}
}

// ParseFlushMode parses "debounced" or "immediate"
func ParseFlushMode(s string) (FlushMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debounced", "debounce":
		return FlushDebounced, true
	case "immediate":
		return FlushImmediate, true
	default:
		return FlushDefault, false
	}
}

// DeletePolicy selects the confirmation required to delete a history record
type DeletePolicy string

const (
	// DeleteTyped requires the exact phrase DeletePhrase
	DeleteTyped DeletePolicy = "typed"
	// DeleteYesNo accepts "y" or "yes"
	DeleteYesNo DeletePolicy = "yesno"
)

// DeletePhrase must be typed to confirm deletion under DeleteTyped
const DeletePhrase = "DELETE"

// Accepts reports whether the answer confirms deletion under the policy
func (p DeletePolicy) Accepts(answer string) bool {
	answer = strings.TrimSpace(answer)
	if p == DeleteYesNo {
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true
		}
		return false
	}
	return answer == DeletePhrase
}

// Exporter writes a spreadsheet copy of the state when a snapshot is saved.
// It returns the location of the written file.
type Exporter interface {
	Export(ctx context.Context, state models.InventoryState) (string, error)
}

// Defaults
const (
	DefaultDocumentID     = "main"
	DefaultDebounceWindow = 700 * time.Millisecond
	DefaultWriteTimeout   = 15 * time.Second
)

// DefaultHistoryLimit returns the in-memory history window for the kind
func DefaultHistoryLimit(kind models.HistoryKind) int {
	if kind == models.HistoryKindSnapshot {
		return 5
	}
	return 20
}

// Options configures a Synchronizer. Zero values are replaced with defaults.
type Options struct {
	Logger   *slog.Logger
	OnChange func(models.InventoryState)
	Exporter Exporter

	DocumentID   string
	HistoryKind  models.HistoryKind
	DeletePolicy DeletePolicy
	// Origin tags this process' writes; generated when empty
	Origin string

	DebounceWindow time.Duration
	WriteTimeout   time.Duration
	HistoryLimit   int

	NamePolicy      validation.NamePolicy
	QuantityFlush   FlushMode
	StructuralFlush FlushMode

	// IgnoreOwnEchoes skips change events carrying this process' Origin
	IgnoreOwnEchoes bool
}

// DefaultOptions returns the options used by the CLI when nothing is configured
func DefaultOptions() Options {
	return Options{
		DocumentID:      DefaultDocumentID,
		HistoryKind:     models.HistoryKindArea,
		DeletePolicy:    DeleteTyped,
		DebounceWindow:  DefaultDebounceWindow,
		WriteTimeout:    DefaultWriteTimeout,
		NamePolicy:      validation.DefaultNamePolicy(),
		QuantityFlush:   FlushDebounced,
		StructuralFlush: FlushImmediate,
	}
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.DocumentID == "" {
		o.DocumentID = DefaultDocumentID
	}
	if !o.HistoryKind.Valid() {
		o.HistoryKind = models.HistoryKindArea
	}
	if o.DeletePolicy != DeleteYesNo {
		o.DeletePolicy = DeleteTyped
	}
	if o.DebounceWindow <= 0 {
		o.DebounceWindow = DefaultDebounceWindow
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.QuantityFlush == FlushDefault {
		o.QuantityFlush = FlushDebounced
	}
	if o.StructuralFlush == FlushDefault {
		o.StructuralFlush = FlushImmediate
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = DefaultHistoryLimit(o.HistoryKind)
	}
	return o
}
