package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

// Recovery turns a panic in a downstream handler into a 500 JSON response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slogx.Error(
					r.Context(),
					"panic recovered",
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("method", r.Method),
					slog.String("url", r.URL.String()),
					slog.String("stack", string(debug.Stack())),
				)

				writeError(w, r, http.StatusInternalServerError, "Internal Server Error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
