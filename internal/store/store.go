package store

import (
	"context"
	"errors"

	"github.com/transtrainer/backend/internal/domain/exercise"
)

var (
	// ErrNotFound is returned by FindByID when no exercise has the given id.
	ErrNotFound = errors.New("not found")

	// ErrDataUnavailable means the backing source could not be read at all.
	ErrDataUnavailable = errors.New("question data unavailable")

	// ErrDataCorrupt means the backing source was read but could not be
	// parsed into the expected shape.
	ErrDataCorrupt = errors.New("question data corrupt")
)

// Store is a read-only view of the question bank. Implementations load the
// bank once, memoize it, and serve unsynchronized concurrent reads from the
// immutable snapshot.
type Store interface {
	// Load returns every exercise in stored order.
	Load(ctx context.Context) ([]exercise.Exercise, error)

	// FindByID returns the exercise with the given question number, or
	// ErrNotFound.
	FindByID(ctx context.Context, id string) (*exercise.Exercise, error)

	Close() error
}
