package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/transtrainer/backend/internal/grader"
)

// ── Request / Response types ────────────────────────────────────────────────

type GradeRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"userAnswer"`
}

type GradeResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	// Score is the number extracted from the reply; absent when the reply
	// carried no parseable score.
	Score *float64 `json:"score,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /api/grade
func (h *Handler) gradeAnswer(w http.ResponseWriter, r *http.Request) {
	var req GradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "缺少参数", "")
		return
	}

	result, err := h.svc.Grade(r.Context(), req.Question, req.UserAnswer)
	if err != nil {
		h.writeGradeError(w, err)
		return
	}

	resp := GradeResponse{Success: true, Result: result.Feedback}
	if result.Scored {
		resp.Score = &result.Score
	}
	respondJSON(w, http.StatusOK, resp)
}

// writeGradeError maps pipeline failures onto the envelope: validation
// errors are the caller's to fix, provider failures are distinguished by
// status so a client can tell a timeout from a broken upstream.
func (h *Handler) writeGradeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, grader.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "缺少参数", "")
	case errors.Is(err, grader.ErrProviderTimeout):
		respondError(w, http.StatusGatewayTimeout, "批改失败", err.Error())
	case errors.Is(err, grader.ErrProviderUnreachable):
		respondError(w, http.StatusBadGateway, "批改失败", err.Error())
	case errors.Is(err, grader.ErrProviderError):
		respondError(w, http.StatusBadGateway, "API返回异常", err.Error())
	default:
		h.logger.Error("unexpected grading error", "error", err)
		respondError(w, http.StatusInternalServerError, "批改失败", err.Error())
	}
}
