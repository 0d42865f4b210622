package api

import (
	"net/http"

	"github.com/transtrainer/backend/internal/domain/exercise"
)

type ListQuestionsResponse struct {
	Success   bool                `json:"success"`
	Questions []exercise.Exercise `json:"questions"`
}

// GET /api/questions
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.svc.ListExercises(r.Context())
	if err != nil {
		h.logger.Error("failed to load question bank", "error", err)
		respondError(w, http.StatusInternalServerError, "读取题库失败", err.Error())
		return
	}

	if exercises == nil {
		exercises = []exercise.Exercise{}
	}

	respondJSON(w, http.StatusOK, ListQuestionsResponse{
		Success:   true,
		Questions: exercises,
	})
}
