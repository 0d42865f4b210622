package grader

import "context"

// Grader submits a grading prompt to the scoring provider and returns the
// raw feedback text. Implementations may call an LLM or return canned
// results (for tests).
//
// A single best-effort attempt is made per call; retry policy, if any
// caller wants one, belongs in a wrapper around this interface.
type Grader interface {
	Grade(ctx context.Context, prompt string) (string, error)
}
