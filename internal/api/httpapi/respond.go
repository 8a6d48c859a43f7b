package httpapi

import (
	"encoding/json"
	"net/http"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slogx.Error(r.Context(), "failed to encode json response", slogx.Err(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, v1.ErrorResponse{Error: message})
}
