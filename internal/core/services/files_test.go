package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitevents/internal/adapters/driven/queries"
	"github.com/custodia-labs/gitevents/internal/core/domain"
)

func blob(text string) string {
	encoded, _ := json.Marshal(text)
	return `{"repository": {"object": {"text": ` + string(encoded) + `, "byteSize": 12, "isBinary": false}}}`
}

func TestFileService_Get(t *testing.T) {
	transport := newMockTransport().respond("file", blob("# Readme\n"))
	svc := NewFileService(transport, queries.New(""))

	file, err := svc.Get(context.Background(), "o", "r", "README.md", domain.FileOptions{})
	require.NoError(t, err)

	assert.Equal(t, "README.md", file.Path)
	assert.Equal(t, "HEAD", file.Ref)
	assert.Equal(t, "# Readme\n", file.Text)
	assert.Equal(t, 12, file.ByteSize)
	assert.Nil(t, file.JSON)

	assert.Equal(t, map[string]any{
		"organization": "o",
		"repository":   "r",
		"expression":   "HEAD:README.md",
	}, transport.lastCall().variables)
}

func TestFileService_GetBranch(t *testing.T) {
	transport := newMockTransport().respond("file", blob("{}"))
	svc := NewFileService(transport, queries.New(""))

	file, err := svc.Get(context.Background(), "o", "r", "data/a.json", domain.FileOptions{Branch: "main"})
	require.NoError(t, err)

	assert.Equal(t, "main", file.Ref)
	assert.Equal(t, "main:data/a.json", transport.lastCall().variables["expression"])
}

func TestFileService_GetParse(t *testing.T) {
	transport := newMockTransport().respond("file", blob("  [1, 2]\n"))
	svc := NewFileService(transport, queries.New(""))

	file, err := svc.Get(context.Background(), "o", "r", "a.json", domain.FileOptions{Parse: true})
	require.NoError(t, err)

	assert.JSONEq(t, `[1, 2]`, string(file.JSON))
}

func TestFileService_GetFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		opts    domain.FileOptions
		kind    error
		wantMsg string
	}{
		{
			name:    "missing object",
			data:    `{"repository": {"object": null}}`,
			kind:    domain.ErrFileNotFound,
			wantMsg: "file not found: a.json",
		},
		{
			name:    "missing repository",
			data:    `{"repository": null}`,
			kind:    domain.ErrFileNotFound,
			wantMsg: "file not found: a.json",
		},
		{
			name:    "binary blob",
			data:    `{"repository": {"object": {"text": null, "byteSize": 99, "isBinary": true}}}`,
			kind:    domain.ErrBinaryFile,
			wantMsg: "binary files are not supported: a.json",
		},
		{
			name:    "invalid json",
			data:    blob("{nope"),
			opts:    domain.FileOptions{Parse: true},
			kind:    domain.ErrInvalidJSON,
			wantMsg: "failed to parse JSON from a.json: ",
		},
		{
			name:    "empty text parsed",
			data:    blob(""),
			opts:    domain.FileOptions{Parse: true},
			kind:    domain.ErrInvalidJSON,
			wantMsg: "failed to parse JSON from a.json: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFileService(newMockTransport().respond("file", tt.data), queries.New(""))

			file, err := svc.Get(context.Background(), "o", "r", "a.json", tt.opts)
			require.Error(t, err)
			assert.Nil(t, file)
			assert.ErrorIs(t, err, tt.kind)
			assert.True(t, domain.IsFileError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NotContains(t, err.Error(), "failed to fetch file")
		})
	}
}

func TestFileService_GetWrapsOtherErrors(t *testing.T) {
	transport := newMockTransport()
	transport.err = errors.New("connection reset")
	svc := NewFileService(transport, queries.New(""))

	_, err := svc.Get(context.Background(), "o", "r", "a.json", domain.FileOptions{})
	assert.EqualError(t, err, "failed to fetch file: connection reset")
}

func TestFileService_GetMissingParameters(t *testing.T) {
	transport := newMockTransport()
	svc := NewFileService(transport, queries.New(""))

	_, err := svc.Get(context.Background(), "o", "", "", domain.FileOptions{})
	assert.EqualError(t, err, "missing required parameters: repo, filePath")
	assert.False(t, domain.IsFileError(err))
	assert.Zero(t, transport.callCount())
}
