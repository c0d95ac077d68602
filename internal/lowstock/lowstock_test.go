package lowstock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/internal/models"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		rule    string
		want    string
	}{
		{name: "empty uses default", rule: "  ", want: DefaultRule},
		{name: "custom", rule: "qty == 0", want: "qty == 0"},
		{name: "syntax error", rule: "qty <", wantErr: ErrInvalidRule},
		{name: "not boolean", rule: "qty + 1", wantErr: ErrInvalidRule},
		{name: "unknown variable", rule: "price > 1", wantErr: ErrInvalidRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := Compile(tt.rule)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rule.String())
		})
	}
}

func TestLow_DefaultRule(t *testing.T) {
	rule, err := Compile("")
	require.NoError(t, err)

	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{name: "below threshold", env: Env{Item: "Broom", Qty: 1, Threshold: 2}, want: true},
		{name: "at threshold", env: Env{Item: "Broom", Qty: 2, Threshold: 2}, want: false},
		{name: "fractional threshold", env: Env{Item: "Soap", Qty: 1, Threshold: 1.5}, want: true},
		{name: "no threshold", env: Env{Item: "Mop", Qty: 0, Threshold: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Low(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	state := models.InventoryState{
		Areas: []string{"Kitchen", "Spa"},
		Items: []models.Item{
			{Name: "Broom", Threshold: 2},
			{Name: "Towels", Threshold: 10},
			{Name: "Mop", Threshold: 0},
		},
		Quantities: [][]int{{1, 0}, {6, 5}, {0, 0}},
	}

	rule, err := Compile("")
	require.NoError(t, err)

	alerts, err := rule.Check(state)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, Alert{Item: "Broom", Qty: 1, Threshold: 2, Index: 0}, alerts[0])

	custom, err := Compile(`qty == 0 || item == "Towels"`)
	require.NoError(t, err)

	alerts, err = custom.Check(state)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Towels", alerts[0].Item)
	assert.Equal(t, "Mop", alerts[1].Item)
}
