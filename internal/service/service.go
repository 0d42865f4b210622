// internal/service/service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/transtrainer/backend/internal/domain/exercise"
	"github.com/transtrainer/backend/internal/grader"
	"github.com/transtrainer/backend/internal/store"
)

// Service coordinates the grading pipeline and the recommendation lookups.
// It holds no request state; one instance serves all requests concurrently.
type Service struct {
	store  store.Store
	grader grader.Grader
	logger *slog.Logger
}

// New creates a Service.
func New(s store.Store, g grader.Grader, logger *slog.Logger) *Service {
	return &Service{
		store:  s,
		grader: g,
		logger: logger,
	}
}

// Grade runs one grading attempt: build the prompt, call the provider,
// extract the score. Validation failures (ErrInvalidInput) are rejected
// before any provider call; provider failure kinds propagate unchanged.
func (s *Service) Grade(ctx context.Context, sourceSentence, learnerAnswer string) (grader.Result, error) {
	prompt, err := grader.BuildPrompt(sourceSentence, learnerAnswer)
	if err != nil {
		return grader.Result{}, err
	}

	reply, err := s.grader.Grade(ctx, prompt)
	if err != nil {
		s.logger.Error("grading call failed", "error", err)
		return grader.Result{}, err
	}

	result := grader.ExtractScore(reply)
	if !result.Scored {
		s.logger.Warn("no score found in provider reply", "reply_length", len(reply))
	}
	return result, nil
}

// Recommend returns the precomputed similar sentences for a question, in
// stored order. An unknown id or an exercise without similar sentences
// yields an empty list, not an error; only store-level failures propagate.
func (s *Service) Recommend(ctx context.Context, questionID string) ([]exercise.SimilarSentence, error) {
	ex, err := s.store.FindByID(ctx, questionID)
	if errors.Is(err, store.ErrNotFound) {
		return []exercise.SimilarSentence{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(ex.SimilarSentences) == 0 {
		return []exercise.SimilarSentence{}, nil
	}
	return ex.SimilarSentences, nil
}

// ListExercises returns the whole question bank in stored order.
func (s *Service) ListExercises(ctx context.Context) ([]exercise.Exercise, error) {
	return s.store.Load(ctx)
}
