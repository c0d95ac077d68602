package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stocktake/pkg/api"
)

func TestReadEvents(t *testing.T) {
	stream := strings.Join([]string{
		": subscribed",
		"",
		"event: change",
		`data: {"id":"main","op":"UPDATE","origin":"a","at":"2024-01-15T10:00:00Z"}`,
		"",
		": ping",
		"",
		"event: other",
		`data: {"id":"main","op":"DELETE"}`,
		"",
		`data: {"id":"main","op":"INSERT"}`,
		"",
		"event: change",
		"data: not-json",
		"",
	}, "\n")

	var got []api.ChangeEvent
	err := readEvents(strings.NewReader(stream), func(ev api.ChangeEvent) {
		got = append(got, ev)
	})

	require.ErrorIs(t, err, ErrStreamClosed)
	require.Len(t, got, 2)
	assert.Equal(t, api.OpUpdate, got[0].Op)
	assert.Equal(t, "a", got[0].Origin)
	assert.Equal(t, api.OpInsert, got[1].Op)
}
