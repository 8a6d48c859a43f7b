package identity

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
)

type ctxKey string

const UserIDKey ctxKey = "user_id"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrBadToken     = errors.New("unknown bearer token")
)

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func UserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", ErrUserNotFound
	}

	return userID, nil
}

// TokenResolver maps static bearer tokens to user ids.
type TokenResolver struct {
	tokens map[string]string
}

func NewTokenResolver(tokens map[string]string) *TokenResolver {
	cp := make(map[string]string, len(tokens))
	for k, v := range tokens {
		cp[k] = v
	}

	return &TokenResolver{tokens: cp}
}

func (r *TokenResolver) Resolve(token string) (string, error) {
	for known, userID := range r.tokens {
		if subtle.ConstantTimeCompare([]byte(known), []byte(token)) == 1 {
			return userID, nil
		}
	}

	return "", ErrBadToken
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
