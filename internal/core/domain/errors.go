package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingParameters indicates required call arguments were absent.
	ErrMissingParameters = errors.New("missing required parameters")

	// ErrUnknownQuery indicates no GraphQL document exists for a name.
	ErrUnknownQuery = errors.New("unknown GraphQL query")

	// File Errors.

	// ErrFileNotFound indicates the expression did not resolve to an object.
	ErrFileNotFound = errors.New("file not found")

	// ErrBinaryFile indicates the resolved blob is binary.
	ErrBinaryFile = errors.New("binary files are not supported")

	// ErrInvalidJSON indicates the file text is not valid JSON.
	ErrInvalidJSON = errors.New("failed to parse JSON")

	// ErrLocationsNotArray indicates the locations file is not a JSON array.
	ErrLocationsNotArray = errors.New("locations file must contain an array of locations")

	// Authentication Errors.

	// ErrAuthRequired indicates no credentials are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the authentication credentials are invalid.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// MissingParametersError lists every required argument that was absent.
type MissingParametersError struct {
	Names []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingParameters, strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrMissingParameters.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

// FileError describes a file retrieval failure for a specific path.
// Kind is one of ErrFileNotFound, ErrBinaryFile or ErrInvalidJSON.
type FileError struct {
	Kind  error
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	if errors.Is(e.Kind, ErrInvalidJSON) {
		return fmt.Sprintf("%s from %s: %v", e.Kind, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *FileError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// IsFileError reports whether err is a file retrieval error that callers
// should see without further wrapping.
func IsFileError(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}
