package domain

import (
	"context"
	"errors"
)

// ErrFileNotFound is returned when the requested path does not exist in the
// repository.
var ErrFileNotFound = errors.New("file not found in repository")

// ErrRevisionConflict is returned when an update carries a stale revision
// marker; someone else wrote the file first.
var ErrRevisionConflict = errors.New("revision marker is stale")

// FileRepository defines the interface for reading and writing files in the
// remote repository (e.g., on GitHub). This allows the application to be
// decoupled from a specific implementation.
//
// Each write produces one commit. There is no retry or backoff; failures
// propagate to the caller.
type FileRepository interface {
	// GetFile returns the raw content of the file at path together with its
	// revision marker, an opaque token required to overwrite the file safely.
	GetFile(ctx context.Context, path string) (content []byte, revision string, err error)

	// CreateFile commits a new file. It fails if a file already exists at
	// path; that check is performed by the underlying API, not here.
	CreateFile(ctx context.Context, path string, message string, content []byte) error

	// UpdateFile overwrites an existing file. The revision must be the
	// marker from the latest GetFile, otherwise ErrRevisionConflict.
	UpdateFile(ctx context.Context, path string, message string, content []byte, revision string) error

	// RepoFullName returns the repository's full name (e.g., "owner/repo").
	RepoFullName() string
}
