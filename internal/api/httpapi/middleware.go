package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/blog-calendar/internal/identity"
	"github.com/evgeniy-krivenko/blog-calendar/pkg/logger/slogx"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(slogx.WithRequestID(r.Context(), id)))
	})
}

type tokenResolver interface {
	Resolve(token string) (string, error)
}

// Authenticate resolves the bearer token into the caller identity. Without a
// header the request stays anonymous unless required is set.
func Authenticate(resolver tokenResolver, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if required && r.URL.Path != healthPath {
					writeError(w, r, http.StatusUnauthorized, "Authorization required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token, ok := identity.BearerToken(header)
			if !ok {
				writeError(w, r, http.StatusUnauthorized, "Malformed authorization header")
				return
			}

			userID, err := resolver.Resolve(token)
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := identity.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Middlewares returns the server middleware chain, innermost first.
func Middlewares(resolver *identity.TokenResolver, authRequired bool) []func(http.Handler) http.Handler {
	mws := make([]func(http.Handler) http.Handler, 0, 4)
	if resolver != nil {
		mws = append(mws, Authenticate(resolver, authRequired))
	}

	return append(mws, Recovery, slogx.HTTPMiddleware, RequestID)
}
