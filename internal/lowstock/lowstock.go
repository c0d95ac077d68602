// Package lowstock decides which items are running low using a configurable
// boolean expression evaluated per item.
package lowstock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/iudanet/stocktake/internal/models"
)

// DefaultRule flags items whose total is below a nonzero threshold
const DefaultRule = "threshold > 0 && qty < threshold"

// ErrInvalidRule indicates that the rule does not compile to a boolean expression
var ErrInvalidRule = errors.New("invalid low-stock rule")

// Env is what a rule can see for one item
type Env struct {
	Item      string  `expr:"item"`
	Qty       int     `expr:"qty"`
	Threshold float64 `expr:"threshold"`
}

// Rule is a compiled low-stock expression
type Rule struct {
	program *vm.Program
	source  string
}

// Compile parses and type-checks the rule. An empty rule means DefaultRule.
func Compile(rule string) (*Rule, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		rule = DefaultRule
	}

	program, err := expr.Compile(rule, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	return &Rule{program: program, source: rule}, nil
}

// String returns the rule source
func (r *Rule) String() string {
	return r.source
}

// Low evaluates the rule for one item
func (r *Rule) Low(env Env) (bool, error) {
	out, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate low-stock rule for %q: %w", env.Item, err)
	}
	low, _ := out.(bool)
	return low, nil
}

// Alert is one item flagged by the rule
type Alert struct {
	Item      string
	Qty       int
	Threshold float64
	Index     int
}

// Check evaluates the rule for every item of the state, using the item's
// total across all areas as qty.
func (r *Rule) Check(state models.InventoryState) ([]Alert, error) {
	alerts := []Alert{}
	for i, item := range state.Items {
		env := Env{Item: item.Name, Qty: state.RowTotal(i), Threshold: item.Threshold}
		low, err := r.Low(env)
		if err != nil {
			return nil, err
		}
		if low {
			alerts = append(alerts, Alert{Item: item.Name, Qty: env.Qty, Threshold: item.Threshold, Index: i})
		}
	}
	return alerts, nil
}
