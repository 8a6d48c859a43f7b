package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc(healthPath, h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/calendar-memos", h.SaveMemo).Methods(http.MethodPost)
	api.HandleFunc("/calendar-memos", h.FetchMemos).Methods(http.MethodGet)
	api.HandleFunc("/calendar-memos/{id}", h.DeleteMemo).Methods(http.MethodDelete)
	api.HandleFunc("/posts/latest", h.LatestPosts).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.Categories).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return r
}
