package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/iudanet/stocktake/internal/validation"
)

// Item представляет товар с порогом низкого остатка.
// Threshold == 0 означает "без предупреждения".
type Item struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
}

// AreaItem представляет количество одного товара в одной зоне
type AreaItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// InventoryState is the canonical inventory document: areas, items and the
// items×areas quantity matrix.
//
// Invariant: len(Quantities) == len(Items) and every row has len(Areas) entries.
// All operations below are pure: they return a new state and leave the
// receiver untouched.
type InventoryState struct {
	Areas      []string `json:"areas"`
	Items      []Item   `json:"items"`
	Quantities [][]int  `json:"quantities"`
}

// DefaultState returns the seed state used when neither the remote store nor
// the local cache holds a usable document.
func DefaultState() InventoryState {
	areas := []string{"Kitchen", "Spa", "Laundry"}
	items := []Item{
		{Name: "Broom", Threshold: 2},
		{Name: "Towels", Threshold: 10},
		{Name: "Detergent", Threshold: 3},
	}

	quantities := make([][]int, len(items))
	for i := range quantities {
		quantities[i] = make([]int, len(areas))
	}

	return InventoryState{Areas: areas, Items: items, Quantities: quantities}
}

// DecodeState parses a JSON document and rejects it unless all three fields
// are present and the matrix invariant holds.
func DecodeState(data []byte) (InventoryState, error) {
	var raw struct {
		Areas      *[]string `json:"areas"`
		Items      *[]Item   `json:"items"`
		Quantities *[][]int  `json:"quantities"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return InventoryState{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	if raw.Areas == nil || raw.Items == nil || raw.Quantities == nil {
		return InventoryState{}, fmt.Errorf("%w: missing areas, items or quantities", ErrMalformedState)
	}

	state := InventoryState{
		Areas:      *raw.Areas,
		Items:      *raw.Items,
		Quantities: *raw.Quantities,
	}
	if err := state.Validate(); err != nil {
		return InventoryState{}, err
	}

	return state, nil
}

// Validate checks the matrix shape invariant and value ranges
func (s InventoryState) Validate() error {
	if len(s.Quantities) != len(s.Items) {
		return fmt.Errorf("%w: %d rows for %d items", ErrMalformedState, len(s.Quantities), len(s.Items))
	}

	for i, row := range s.Quantities {
		if len(row) != len(s.Areas) {
			return fmt.Errorf("%w: row %d has %d columns for %d areas", ErrMalformedState, i, len(row), len(s.Areas))
		}
		for j, qty := range row {
			if qty < 0 {
				return fmt.Errorf("%w: negative quantity at [%d][%d]", ErrMalformedState, i, j)
			}
		}
	}

	for _, item := range s.Items {
		if !validThreshold(item.Threshold) {
			return fmt.Errorf("%w: invalid threshold for %q", ErrMalformedState, item.Name)
		}
	}

	return nil
}

// Clone создает глубокую копию состояния
func (s InventoryState) Clone() InventoryState {
	areas := make([]string, len(s.Areas))
	copy(areas, s.Areas)

	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	quantities := make([][]int, len(s.Quantities))
	for i, row := range s.Quantities {
		quantities[i] = make([]int, len(row))
		copy(quantities[i], row)
	}

	return InventoryState{Areas: areas, Items: items, Quantities: quantities}
}

// AddArea appends an area and a zero column
func (s InventoryState) AddArea(name string, policy validation.NamePolicy) (InventoryState, error) {
	name, err := validation.NormalizeName(name)
	if err != nil {
		return s, err
	}

	if idx := s.findArea(name, policy, -1); idx >= 0 {
		return s, fmt.Errorf("%w: area %q", ErrDuplicateName, s.Areas[idx])
	}

	next := s.Clone()
	next.Areas = append(next.Areas, name)
	for i := range next.Quantities {
		next.Quantities[i] = append(next.Quantities[i], 0)
	}

	return next, nil
}

// AddItem appends an item and a zero-filled row sized to the area count
func (s InventoryState) AddItem(name string, threshold float64, policy validation.NamePolicy) (InventoryState, error) {
	name, err := validation.NormalizeName(name)
	if err != nil {
		return s, err
	}

	if !validThreshold(threshold) {
		return s, ErrInvalidThreshold
	}

	if idx := s.findItem(name, policy, -1); idx >= 0 {
		return s, fmt.Errorf("%w: item %q", ErrDuplicateName, s.Items[idx].Name)
	}

	next := s.Clone()
	next.Items = append(next.Items, Item{Name: name, Threshold: threshold})
	next.Quantities = append(next.Quantities, make([]int, len(next.Areas)))

	return next, nil
}

// RenameArea replaces an area name in place; quantities are untouched
func (s InventoryState) RenameArea(index int, name string, policy validation.NamePolicy) (InventoryState, error) {
	if err := checkIndex(index, len(s.Areas)); err != nil {
		return s, err
	}

	name, err := validation.NormalizeName(name)
	if err != nil {
		return s, err
	}

	if idx := s.findArea(name, policy, index); idx >= 0 {
		return s, fmt.Errorf("%w: area %q", ErrDuplicateName, s.Areas[idx])
	}

	next := s.Clone()
	next.Areas[index] = name

	return next, nil
}

// RenameItem replaces an item name in place; threshold and quantities are untouched
func (s InventoryState) RenameItem(index int, name string, policy validation.NamePolicy) (InventoryState, error) {
	if err := checkIndex(index, len(s.Items)); err != nil {
		return s, err
	}

	name, err := validation.NormalizeName(name)
	if err != nil {
		return s, err
	}

	if idx := s.findItem(name, policy, index); idx >= 0 {
		return s, fmt.Errorf("%w: item %q", ErrDuplicateName, s.Items[idx].Name)
	}

	next := s.Clone()
	next.Items[index].Name = name

	return next, nil
}

// RemoveArea deletes the column at index. When reassignTo is set, each row's
// value is first added into the destination column (a pre-removal index).
func (s InventoryState) RemoveArea(index int, reassignTo *int) (InventoryState, error) {
	if err := checkIndex(index, len(s.Areas)); err != nil {
		return s, err
	}

	if reassignTo != nil {
		dest := *reassignTo
		if dest == index || dest < 0 || dest >= len(s.Areas) {
			return s, fmt.Errorf("%w: cannot move area %d into %d", ErrInvalidReassign, index, dest)
		}
	}

	next := s.Clone()
	for i, row := range next.Quantities {
		if reassignTo != nil {
			row[*reassignTo] += row[index]
		}
		next.Quantities[i] = append(row[:index], row[index+1:]...)
	}
	next.Areas = append(next.Areas[:index], next.Areas[index+1:]...)

	return next, nil
}

// RemoveItem deletes the item and its whole row
func (s InventoryState) RemoveItem(index int) (InventoryState, error) {
	if err := checkIndex(index, len(s.Items)); err != nil {
		return s, err
	}

	next := s.Clone()
	next.Items = append(next.Items[:index], next.Items[index+1:]...)
	next.Quantities = append(next.Quantities[:index], next.Quantities[index+1:]...)

	return next, nil
}

// MoveArea moves the area at from to position to, carrying its column along
func (s InventoryState) MoveArea(from, to int) (InventoryState, error) {
	if err := checkIndex(from, len(s.Areas)); err != nil {
		return s, err
	}
	if err := checkIndex(to, len(s.Areas)); err != nil {
		return s, err
	}

	next := s.Clone()
	next.Areas = move(next.Areas, from, to)
	for i := range next.Quantities {
		next.Quantities[i] = move(next.Quantities[i], from, to)
	}

	return next, nil
}

// MoveItem moves the item at from to position to, carrying its row along
func (s InventoryState) MoveItem(from, to int) (InventoryState, error) {
	if err := checkIndex(from, len(s.Items)); err != nil {
		return s, err
	}
	if err := checkIndex(to, len(s.Items)); err != nil {
		return s, err
	}

	next := s.Clone()
	next.Items = move(next.Items, from, to)
	next.Quantities = move(next.Quantities, from, to)

	return next, nil
}

// SetQuantity sets one cell of the matrix. Negative input is coerced to 0.
func (s InventoryState) SetQuantity(item, area, qty int) (InventoryState, error) {
	if err := checkIndex(item, len(s.Items)); err != nil {
		return s, err
	}
	if err := checkIndex(area, len(s.Areas)); err != nil {
		return s, err
	}

	if qty < 0 {
		qty = 0
	}

	next := s.Clone()
	next.Quantities[item][area] = qty

	return next, nil
}

// SetThreshold updates the low-stock threshold of an item
func (s InventoryState) SetThreshold(item int, threshold float64) (InventoryState, error) {
	if err := checkIndex(item, len(s.Items)); err != nil {
		return s, err
	}

	if !validThreshold(threshold) {
		return s, ErrInvalidThreshold
	}

	next := s.Clone()
	next.Items[item].Threshold = threshold

	return next, nil
}

// RowTotal returns the sum of an item's quantities across all areas
func (s InventoryState) RowTotal(item int) int {
	if item < 0 || item >= len(s.Quantities) {
		return 0
	}

	total := 0
	for _, qty := range s.Quantities[item] {
		total += qty
	}
	return total
}

// ColumnTotal returns the sum of all items in one area
func (s InventoryState) ColumnTotal(area int) int {
	if area < 0 || area >= len(s.Areas) {
		return 0
	}

	total := 0
	for _, row := range s.Quantities {
		total += row[area]
	}
	return total
}

// ColumnTotals returns per-area totals
func (s InventoryState) ColumnTotals() []int {
	totals := make([]int, len(s.Areas))
	for _, row := range s.Quantities {
		for j, qty := range row {
			totals[j] += qty
		}
	}
	return totals
}

// GrandTotal returns the sum of the whole matrix
func (s InventoryState) GrandTotal() int {
	total := 0
	for i := range s.Quantities {
		total += s.RowTotal(i)
	}
	return total
}

// Column returns the (item, qty) pairs of one area in item order
func (s InventoryState) Column(area int) ([]AreaItem, error) {
	if err := checkIndex(area, len(s.Areas)); err != nil {
		return nil, err
	}

	column := make([]AreaItem, len(s.Items))
	for i, item := range s.Items {
		column[i] = AreaItem{Name: item.Name, Qty: s.Quantities[i][area]}
	}
	return column, nil
}

// AreaIndex returns the index of the area with the exact name, or -1
func (s InventoryState) AreaIndex(name string) int {
	for i, area := range s.Areas {
		if area == name {
			return i
		}
	}
	return -1
}

// ItemIndex returns the index of the item with the name (case-insensitive), or -1
func (s InventoryState) ItemIndex(name string) int {
	return s.findItem(name, validation.DefaultNamePolicy(), -1)
}

// Quantity returns the value at (item, area) addressed by names
func (s InventoryState) Quantity(itemName, areaName string) (int, error) {
	item := s.ItemIndex(itemName)
	area := s.AreaIndex(areaName)
	if item < 0 || area < 0 {
		return 0, fmt.Errorf("%w: %q/%q", ErrIndexOutOfRange, itemName, areaName)
	}
	return s.Quantities[item][area], nil
}

func (s InventoryState) findArea(name string, policy validation.NamePolicy, skip int) int {
	for i, area := range s.Areas {
		if i != skip && policy.SameArea(area, name) {
			return i
		}
	}
	return -1
}

func (s InventoryState) findItem(name string, policy validation.NamePolicy, skip int) int {
	for i, item := range s.Items {
		if i != skip && policy.SameItem(item.Name, name) {
			return i
		}
	}
	return -1
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}

func validThreshold(threshold float64) bool {
	return threshold >= 0 && !math.IsNaN(threshold) && !math.IsInf(threshold, 0)
}

// move переставляет элемент from на позицию to, сдвигая промежуточные
func move[T any](s []T, from, to int) []T {
	if from == to {
		return s
	}

	v := s[from]
	s = append(s[:from], s[from+1:]...)
	s = append(s[:to], append([]T{v}, s[to:]...)...)
	return s
}

// IsValidationError reports whether err was caused by rejected input rather than I/O
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrIndexOutOfRange) ||
		errors.Is(err, ErrInvalidReassign) ||
		errors.Is(err, ErrInvalidThreshold) ||
		errors.Is(err, validation.ErrEmptyName) ||
		errors.Is(err, validation.ErrNameTooLong) ||
		errors.Is(err, validation.ErrInvalidName) ||
		errors.Is(err, validation.ErrDateRequired) ||
		errors.Is(err, validation.ErrInvalidDate)
}
