package exercise

import "encoding/json"

// Exercise is one translation question from the bank: an English source
// sentence the learner translates into Chinese, plus optional reference
// answer and precomputed similar-sentence recommendations.
//
// Exercises are loaded once at startup and never mutated; the JSON tags
// match the upstream dataset format.
type Exercise struct {
	QuestionNumber   string            `json:"questionNumber"`
	Question         string            `json:"question"`
	Answer           string            `json:"answer,omitempty"`
	QuestionSource   string            `json:"questionSource,omitempty"`
	SimilarSentences []SimilarSentence `json:"similar_sentences,omitempty"`
}

// SimilarSentence is a precomputed near-duplicate practice sentence with
// its similarity breakdown relative to the parent exercise. The ID is
// opaque; the dataset uses plain integers but nothing here depends on that.
type SimilarSentence struct {
	ID               json.Number      `json:"id"`
	Text             string           `json:"text"`
	SimilarityScores SimilarityScores `json:"similarity_scores"`
}

// SimilarityScores holds the precomputed similarity components, each in [0, 1].
type SimilarityScores struct {
	Total    float64 `json:"total_similarity"`
	Grammar  float64 `json:"grammar_similarity"`
	Semantic float64 `json:"semantic_similarity"`
}
