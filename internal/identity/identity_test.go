package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserIDFromContext(t *testing.T) {
	_, err := UserID(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)

	id, err := UserID(WithUserID(context.Background(), "u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func TestTokenResolver(t *testing.T) {
	r := NewTokenResolver(map[string]string{"abc": "u1"})

	id, err := r.Resolve("abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	_, err = r.Resolve("abd")
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = BearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Basic abc", "Bearer", "Bearer  "} {
		_, ok := BearerToken(h)
		assert.False(t, ok, h)
	}
}
