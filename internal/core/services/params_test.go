package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

func TestRequireParams(t *testing.T) {
	tests := []struct {
		name    string
		params  []param
		wantErr string
	}{
		{"all present", []param{{"org", "o"}, {"number", 1}}, ""},
		{"empty string", []param{{"org", ""}, {"repo", "r"}}, "missing required parameters: org"},
		{"zero number", []param{{"number", 0}}, "missing required parameters: number"},
		{"nil", []param{{"value", nil}}, "missing required parameters: value"},
		{"order kept", []param{{"b", ""}, {"a", ""}}, "missing required parameters: b, a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireParams(tt.params...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrMissingParameters)
		})
	}
}

func TestConnectionEntries(t *testing.T) {
	var nilConn *connection
	assert.Nil(t, nilConn.entries())

	edges := &connection{Edges: []json.RawMessage{json.RawMessage(`{}`)}, Nodes: []json.RawMessage{}}
	assert.Len(t, edges.entries(), 1)

	nodes := &connection{Nodes: []json.RawMessage{json.RawMessage(`{}`), json.RawMessage(`{}`)}}
	assert.Len(t, nodes.entries(), 2)
}

func TestUnwrapNode(t *testing.T) {
	assert.JSONEq(t, `{"a": 1}`, string(unwrapNode(json.RawMessage(`{"node": {"a": 1}}`))))
	assert.JSONEq(t, `{"node": null, "a": 2}`, string(unwrapNode(json.RawMessage(`{"node": null, "a": 2}`))))
	assert.JSONEq(t, `{"a": 3}`, string(unwrapNode(json.RawMessage(`{"a": 3}`))))
}

func TestNullableHelpers(t *testing.T) {
	empty, text := "", "x"
	zero, one := 0, 1

	assert.Nil(t, nonEmpty(nil))
	assert.Nil(t, nonEmpty(&empty))
	assert.Equal(t, &text, nonEmpty(&text))

	assert.Nil(t, nonZero(&zero))
	assert.Equal(t, &one, nonZero(&one))

	bad, good := "yesterday", "2024-05-01T12:00:00Z"
	assert.Nil(t, timestamp(&bad))
	require.NotNil(t, timestamp(&good))
	assert.Equal(t, 2024, timestamp(&good).Year())
}
