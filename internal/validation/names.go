package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLen максимальная длина имени зоны или товара (в символах)
const MaxNameLen = 64

// DateLayout формат даты инвентаризации
const DateLayout = "2006-01-02"

var (
	// ErrEmptyName indicates that a name is empty after trimming
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong indicates that a name exceeds MaxNameLen
	ErrNameTooLong = fmt.Errorf("name must not exceed %d characters", MaxNameLen)

	// ErrInvalidName indicates that a name contains control characters
	ErrInvalidName = errors.New("name must not contain control characters")

	// ErrDateRequired indicates that an inventory date was not provided
	ErrDateRequired = errors.New("inventory date is required")

	// ErrInvalidDate indicates that an inventory date is not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("inventory date must be in YYYY-MM-DD format")
)

// controlChars matches any control character, including tabs and newlines
var controlChars = regexp.MustCompile(`[\x00-\x1f\x7f]`)

// NormalizeName trims surrounding whitespace and validates an area or item name.
// It returns the trimmed name.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}

	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return "", ErrNameTooLong
	}

	if controlChars.MatchString(trimmed) {
		return "", ErrInvalidName
	}

	return trimmed, nil
}

// NamePolicy controls how name collisions are detected.
// Item names are always compared case-insensitively; area names follow
// AreaCaseSensitive.
type NamePolicy struct {
	AreaCaseSensitive bool
}

// DefaultNamePolicy returns the policy used when nothing is configured:
// case-sensitive areas, case-insensitive items.
func DefaultNamePolicy() NamePolicy {
	return NamePolicy{AreaCaseSensitive: true}
}

// SameArea reports whether two area names collide under the policy
func (p NamePolicy) SameArea(a, b string) bool {
	if p.AreaCaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

// SameItem reports whether two item names collide
func (p NamePolicy) SameItem(a, b string) bool {
	return strings.EqualFold(a, b)
}

// ParseInventoryDate validates a calendar date and returns it normalized to YYYY-MM-DD.
// Future dates are accepted: the "not after today" rule belongs to the caller.
func ParseInventoryDate(date string) (string, error) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return "", ErrDateRequired
	}

	parsed, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return parsed.Format(DateLayout), nil
}
