package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsValidate(t *testing.T) {
	opts := NewOptions("localhost:5432", "user", "secret", "blog", WithRetryAttempts(3))
	assert.NoError(t, opts.Validate())
	assert.True(t, opts.retry)
	assert.Equal(t, int32(5), opts.maxConns)

	bad := NewOptions("localhost", "", "secret", "blog", WithRetryAttempts(0))
	err := bad.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "retryAttempts")
	}
}
