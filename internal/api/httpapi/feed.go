package httpapi

import (
	"net/http"
	"strconv"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

// LatestPosts GET /api/posts/latest?limit=
func (h *Handler) LatestPosts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, r, http.StatusBadRequest, v1.FeedResponse[v1.Post]{Error: "limit must be an integer"})
			return
		}
		limit = v
	}

	posts, err := h.feed.LatestPosts(r.Context(), limit)
	if err != nil {
		slogx.Error(r.Context(), "failed to fetch latest posts", slogx.Err(err))
		writeJSON(w, r, http.StatusInternalServerError, v1.FeedResponse[v1.Post]{Error: "Failed to fetch latest posts"})
		return
	}

	writeJSON(w, r, http.StatusOK, v1.FeedResponse[v1.Post]{Success: true, Data: convertPostsToAPI(posts)})
}

// Categories GET /api/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.feed.Categories(r.Context())
	if err != nil {
		slogx.Error(r.Context(), "failed to fetch categories", slogx.Err(err))
		writeJSON(w, r, http.StatusInternalServerError, v1.FeedResponse[v1.Category]{Error: "Failed to fetch categories"})
		return
	}

	writeJSON(w, r, http.StatusOK, v1.FeedResponse[v1.Category]{Success: true, Data: convertCategoriesToAPI(categories)})
}
