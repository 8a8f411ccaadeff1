package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure FileService implements the interface.
var _ driving.FileService = (*FileService)(nil)

// FileService reads text blobs by git expression.
type FileService struct {
	transport driven.Transport
	queries   driven.QueryProvider
}

// NewFileService creates a new file service.
func NewFileService(transport driven.Transport, queries driven.QueryProvider) *FileService {
	return &FileService{transport: transport, queries: queries}
}

// Get returns the file at path on opts.Branch. With opts.Parse the text
// must be valid JSON.
func (s *FileService) Get(
	ctx context.Context, org, repo, path string, opts domain.FileOptions,
) (*domain.File, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}, param{"filePath", path}); err != nil {
		return nil, err
	}

	file, err := s.get(ctx, org, repo, path, opts)
	if err != nil {
		if domain.IsFileError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}
	return file, nil
}

func (s *FileService) get(
	ctx context.Context, org, repo, path string, opts domain.FileOptions,
) (*domain.File, error) {
	expression := opts.Ref() + ":" + path
	logger.Debug("fetching %s from %s/%s", expression, org, repo)

	query, err := s.queries.Get(driven.QueryFile)
	if err != nil {
		return nil, err
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{
		"organization": org,
		"repository":   repo,
		"expression":   expression,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Repository *struct {
			Object *struct {
				Text     *string `json:"text"`
				ByteSize int     `json:"byteSize"`
				IsBinary bool    `json:"isBinary"`
			} `json:"object"`
		} `json:"repository"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}

	if payload.Repository == nil || payload.Repository.Object == nil {
		return nil, &domain.FileError{Kind: domain.ErrFileNotFound, Path: path}
	}
	object := payload.Repository.Object
	if object.IsBinary {
		return nil, &domain.FileError{Kind: domain.ErrBinaryFile, Path: path}
	}

	file := &domain.File{
		Path:     path,
		Ref:      opts.Ref(),
		ByteSize: object.ByteSize,
	}
	if object.Text != nil {
		file.Text = *object.Text
	}

	if opts.Parse {
		doc, err := parseJSON(file.Text)
		if err != nil {
			return nil, &domain.FileError{Kind: domain.ErrInvalidJSON, Path: path, Cause: err}
		}
		file.JSON = doc
	}

	return file, nil
}

// parseJSON checks that text is exactly one JSON value.
func parseJSON(text string) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(doc), nil
}
