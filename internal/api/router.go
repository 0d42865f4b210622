// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires the API surface onto the mux. Paths keep the /api
// prefix the frontend already speaks.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/questions", h.listQuestions)
	mux.HandleFunc("POST /api/grade", h.gradeAnswer)
	mux.HandleFunc("GET /api/recommend", h.recommend)
}
