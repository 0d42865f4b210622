package grader

import (
	"regexp"
	"strconv"
)

// scorePattern matches the labeled score the rubric instructs the provider
// to emit, e.g. "得分: 1.75分". Same pattern the reference UI used.
var scorePattern = regexp.MustCompile(`得分:\s*([\d.]+)分`)

// Result is the outcome of one grading attempt. Feedback always carries the
// provider's full reply; Score is only meaningful when Scored is true.
type Result struct {
	Score    float64
	Scored   bool
	Feedback string
}

// ExtractScore parses the provider's free-text reply. It takes the first
// occurrence of the score pattern and parses its number; if the pattern is
// absent or the number is malformed, the result is unscored. Extraction
// never fails — the reply text is preserved either way.
func ExtractScore(rawReply string) Result {
	result := Result{Feedback: rawReply}

	m := scorePattern.FindStringSubmatch(rawReply)
	if m == nil {
		return result
	}

	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		// Something like "得分: 1.2.3分" — degrade to unscored.
		return result
	}

	result.Score = score
	result.Scored = true
	return result
}
