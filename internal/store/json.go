package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/transtrainer/backend/internal/domain/exercise"
)

// JSONStore serves the question bank from a single JSON file in the upstream
// dataset format: a top-level array of exercise objects. The file is read
// lazily on first access and memoized for the rest of the process lifetime,
// so later changes to the file are not observed.
type JSONStore struct {
	path string

	once      sync.Once
	exercises []exercise.Exercise
	byID      map[string]*exercise.Exercise
	loadErr   error
}

// Compile-time check: *JSONStore satisfies the Store interface.
var _ Store = (*JSONStore)(nil)

// NewJSON creates a store backed by the JSON file at path. The file is not
// touched until the first Load or FindByID.
func NewJSON(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) load() error {
	s.once.Do(func() {
		data, err := os.ReadFile(s.path)
		if err != nil {
			s.loadErr = fmt.Errorf("%w: reading %s: %v", ErrDataUnavailable, s.path, err)
			return
		}

		var exercises []exercise.Exercise
		if err := json.Unmarshal(data, &exercises); err != nil {
			s.loadErr = fmt.Errorf("%w: parsing %s: %v", ErrDataCorrupt, s.path, err)
			return
		}

		s.exercises = exercises
		s.byID = make(map[string]*exercise.Exercise, len(exercises))
		for i := range s.exercises {
			s.byID[s.exercises[i].QuestionNumber] = &s.exercises[i]
		}
	})
	return s.loadErr
}

func (s *JSONStore) Load(ctx context.Context) ([]exercise.Exercise, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.exercises, nil
}

func (s *JSONStore) FindByID(ctx context.Context, id string) (*exercise.Exercise, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	ex, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ex, nil
}

func (s *JSONStore) Close() error {
	return nil
}
