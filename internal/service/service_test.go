package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/transtrainer/backend/internal/domain/exercise"
	"github.com/transtrainer/backend/internal/grader"
	"github.com/transtrainer/backend/internal/service"
	"github.com/transtrainer/backend/internal/store"
)

// fakeStore serves a fixed slice of exercises, or a fixed error.
type fakeStore struct {
	exercises []exercise.Exercise
	err       error
}

func (f *fakeStore) Load(ctx context.Context) ([]exercise.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exercises, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id string) (*exercise.Exercise, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.exercises {
		if f.exercises[i].QuestionNumber == id {
			return &f.exercises[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) Close() error { return nil }

// fakeGrader returns a canned reply or error and counts calls.
type fakeGrader struct {
	reply string
	err   error
	calls int
}

func (f *fakeGrader) Grade(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newService(s store.Store, g grader.Grader) *service.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.New(s, g, logger)
}

func bankWithSimilar() *fakeStore {
	return &fakeStore{
		exercises: []exercise.Exercise{
			{
				QuestionNumber: "Q1",
				Question:       "The cat sat on the mat.",
				SimilarSentences: []exercise.SimilarSentence{
					{ID: "1", Text: "The dog lay on the rug."},
					{ID: "2", Text: "The cat slept on the sofa."},
				},
			},
			{QuestionNumber: "Q2", Question: "Time flies like an arrow."},
		},
	}
}

func TestGrade_HappyPath(t *testing.T) {
	g := &fakeGrader{reply: "得分: 2分\n得分点分析:\n✓ 全部翻译准确"}
	svc := newService(bankWithSimilar(), g)

	result, err := svc.Grade(context.Background(), "The cat sat on the mat.", "猫坐在垫子上。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Scored || result.Score != 2 {
		t.Errorf("expected score 2, got %+v", result)
	}
	if result.Feedback != g.reply {
		t.Errorf("feedback must be the full provider reply; got %q", result.Feedback)
	}
}

func TestGrade_InvalidInputSkipsProvider(t *testing.T) {
	g := &fakeGrader{reply: "得分: 2分"}
	svc := newService(bankWithSimilar(), g)

	_, err := svc.Grade(context.Background(), "", "some answer")
	if !errors.Is(err, grader.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if g.calls != 0 {
		t.Errorf("expected no provider call, got %d", g.calls)
	}
}

func TestGrade_ProviderFailurePropagates(t *testing.T) {
	cases := []error{
		grader.ErrProviderTimeout,
		grader.ErrProviderUnreachable,
		grader.ErrProviderError,
	}

	for _, kind := range cases {
		t.Run(kind.Error(), func(t *testing.T) {
			g := &fakeGrader{err: fmt.Errorf("%w: detail", kind)}
			svc := newService(bankWithSimilar(), g)

			_, err := svc.Grade(context.Background(), "The cat sat on the mat.", "猫坐在垫子上。")
			if !errors.Is(err, kind) {
				t.Errorf("expected %v to propagate, got %v", kind, err)
			}
		})
	}
}

func TestGrade_UnscoredReply(t *testing.T) {
	g := &fakeGrader{reply: "整体不错，但我不打分。"}
	svc := newService(bankWithSimilar(), g)

	result, err := svc.Grade(context.Background(), "The cat sat on the mat.", "猫坐在垫子上。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Scored {
		t.Error("expected unscored result")
	}
	if result.Feedback != g.reply {
		t.Errorf("feedback must survive extraction failure; got %q", result.Feedback)
	}
}

func TestGrade_NoCaching(t *testing.T) {
	g := &fakeGrader{reply: "得分: 1.75分"}
	svc := newService(bankWithSimilar(), g)

	for i := 0; i < 2; i++ {
		if _, err := svc.Grade(context.Background(), "The cat sat on the mat.", "猫坐在垫子上。"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if g.calls != 2 {
		t.Errorf("expected 2 independent provider calls, got %d", g.calls)
	}
}

func TestRecommend(t *testing.T) {
	svc := newService(bankWithSimilar(), &fakeGrader{})

	similar, err := svc.Recommend(context.Background(), "Q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(similar) != 2 {
		t.Fatalf("expected 2 similar sentences, got %d", len(similar))
	}
	if similar[0].ID != "1" || similar[1].ID != "2" {
		t.Errorf("expected stored order 1, 2; got %s, %s", similar[0].ID, similar[1].ID)
	}
}

func TestRecommend_NoRecommendationsIsNotAnError(t *testing.T) {
	svc := newService(bankWithSimilar(), &fakeGrader{})

	for _, id := range []string{"Q99", "Q2", ""} {
		similar, err := svc.Recommend(context.Background(), id)
		if err != nil {
			t.Errorf("id %q: unexpected error: %v", id, err)
		}
		if similar == nil || len(similar) != 0 {
			t.Errorf("id %q: expected empty list, got %v", id, similar)
		}
	}
}

func TestRecommend_StoreFailurePropagates(t *testing.T) {
	svc := newService(&fakeStore{err: store.ErrDataUnavailable}, &fakeGrader{})

	if _, err := svc.Recommend(context.Background(), "Q1"); !errors.Is(err, store.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestListExercises(t *testing.T) {
	svc := newService(bankWithSimilar(), &fakeGrader{})

	exercises, err := svc.ListExercises(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exercises) != 2 {
		t.Errorf("expected 2 exercises, got %d", len(exercises))
	}

	failing := newService(&fakeStore{err: store.ErrDataCorrupt}, &fakeGrader{})
	if _, err := failing.ListExercises(context.Background()); !errors.Is(err, store.ErrDataCorrupt) {
		t.Errorf("expected ErrDataCorrupt, got %v", err)
	}
}
