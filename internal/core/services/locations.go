package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure LocationService implements the interface.
var _ driving.LocationService = (*LocationService)(nil)

// LocationService reads and validates the venue list file.
type LocationService struct {
	files     driving.FileService
	validator driven.LocationValidator
}

// NewLocationService creates a new location service.
func NewLocationService(files driving.FileService, validator driven.LocationValidator) *LocationService {
	return &LocationService{files: files, validator: validator}
}

// List returns the valid venues and a diagnostic per rejected entry.
func (s *LocationService) List(
	ctx context.Context, org, repo string, opts domain.LocationOptions,
) (*domain.LocationResult, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}); err != nil {
		return nil, err
	}

	result, err := s.list(ctx, org, repo, opts)
	if err != nil {
		if passThrough(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	return result, nil
}

func (s *LocationService) list(
	ctx context.Context, org, repo string, opts domain.LocationOptions,
) (*domain.LocationResult, error) {
	logger.Section("Locations")

	file, err := s.files.Get(ctx, org, repo, opts.Path(), domain.FileOptions{
		Branch: opts.Ref(),
		Parse:  true,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.validator.Validate(file.JSON)
	if err != nil {
		return nil, err
	}

	for _, e := range result.Errors {
		logger.Warn("location %d (%s) rejected: %v", e.Index, e.ID, e.Errors)
	}
	return result, nil
}

// passThrough reports errors the caller should see unwrapped: a missing
// file or a file that is not JSON.
func passThrough(err error) bool {
	var fileErr *domain.FileError
	if !errors.As(err, &fileErr) {
		return false
	}
	return errors.Is(fileErr.Kind, domain.ErrFileNotFound) || errors.Is(fileErr.Kind, domain.ErrInvalidJSON)
}
