package api

import (
	"net/http"

	"github.com/transtrainer/backend/internal/domain/exercise"
)

type RecommendResponse struct {
	Success bool                       `json:"success"`
	Data    []exercise.SimilarSentence `json:"data"`
}

// GET /api/recommend?questionId=<id>
//
// "No recommendations" is a normal outcome: an unknown id, a missing
// questionId parameter, or an exercise without similar sentences all yield
// success with an empty list. Only a store failure is an error.
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	questionID := r.URL.Query().Get("questionId")

	similar, err := h.svc.Recommend(r.Context(), questionID)
	if err != nil {
		h.logger.Error("failed to resolve recommendations", "question_id", questionID, "error", err)
		respondError(w, http.StatusInternalServerError, "获取推荐题失败", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, RecommendResponse{
		Success: true,
		Data:    similar,
	})
}
