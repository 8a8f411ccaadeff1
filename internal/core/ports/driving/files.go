package driving

import (
	"context"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// FileService reads text files from a repository.
type FileService interface {
	// Get returns the file at path. Retrieval failures are *domain.FileError.
	Get(ctx context.Context, org, repo, path string, opts domain.FileOptions) (*domain.File, error)
}

// LocationService reads the venue list.
type LocationService interface {
	// List returns valid venues and per-entry diagnostics.
	List(ctx context.Context, org, repo string, opts domain.LocationOptions) (*domain.LocationResult, error)
}
