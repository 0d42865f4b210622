package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/transtrainer/backend/internal/domain/exercise"
)

const schema = `
CREATE TABLE IF NOT EXISTS exercises (
    question_number TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    answer TEXT,
    question_source TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS similar_sentences (
    id TEXT NOT NULL,
    question_number TEXT NOT NULL,
    text TEXT NOT NULL,
    total_similarity REAL NOT NULL,
    grammar_similarity REAL NOT NULL,
    semantic_similarity REAL NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (question_number, id),
    FOREIGN KEY (question_number) REFERENCES exercises(question_number)
);
`

// SQLiteStore serves the question bank from a SQLite database. Like the JSON
// store it reads everything into memory on first access and answers lookups
// from the memoized snapshot, so the database sees exactly one read pass.
type SQLiteStore struct {
	db *sql.DB

	once      sync.Once
	exercises []exercise.Exercise
	byID      map[string]*exercise.Exercise
	loadErr   error
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens the database at dbPath, creating the schema if it does
// not exist yet.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDataUnavailable, dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: initializing schema: %v", ErrDataUnavailable, err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) load(ctx context.Context) error {
	s.once.Do(func() {
		exercises, err := s.readAll(ctx)
		if err != nil {
			s.loadErr = err
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

func (s *SQLiteStore) readAll(ctx context.Context) ([]exercise.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_number, question, COALESCE(answer, ''), COALESCE(question_source, '')
		 FROM exercises ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying exercises: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	var exercises []exercise.Exercise
	for rows.Next() {
		var ex exercise.Exercise
		if err := rows.Scan(&ex.QuestionNumber, &ex.Question, &ex.Answer, &ex.QuestionSource); err != nil {
			return nil, fmt.Errorf("%w: scanning exercise: %v", ErrDataCorrupt, err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading exercises: %v", ErrDataUnavailable, err)
	}

	for i := range exercises {
		similar, err := s.readSimilar(ctx, exercises[i].QuestionNumber)
		if err != nil {
			return nil, err
		}
		exercises[i].SimilarSentences = similar
	}

	return exercises, nil
}

func (s *SQLiteStore) readSimilar(ctx context.Context, questionNumber string) ([]exercise.SimilarSentence, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, total_similarity, grammar_similarity, semantic_similarity
		 FROM similar_sentences WHERE question_number = ? ORDER BY position`,
		questionNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: querying similar sentences: %v", ErrDataUnavailable, err)
	}
	defer rows.Close()

	var similar []exercise.SimilarSentence
	for rows.Next() {
		var ss exercise.SimilarSentence
		var id string
		if err := rows.Scan(&id, &ss.Text,
			&ss.SimilarityScores.Total,
			&ss.SimilarityScores.Grammar,
			&ss.SimilarityScores.Semantic); err != nil {
			return nil, fmt.Errorf("%w: scanning similar sentence: %v", ErrDataCorrupt, err)
		}
		ss.ID = json.Number(id)
		similar = append(similar, ss)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading similar sentences: %v", ErrDataUnavailable, err)
	}

	return similar, nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]exercise.Exercise, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.exercises, nil
}

func (s *SQLiteStore) FindByID(ctx context.Context, id string) (*exercise.Exercise, error) {
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	ex, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ex, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
