package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Addr)
	assert.Equal(t, ":50051", cfg.GRPC.Addr)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, uint(3), cfg.Database.RetryAttempts)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.False(t, cfg.Auth.Required)
}

func TestParseSQLiteAndTokens(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/blog.db")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("AUTH_TOKENS", "abc:u1,def:u2")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/blog.db", cfg.Database.SQLitePath)
	assert.Equal(t, map[string]string{"abc": "u1", "def": "u2"}, cfg.Auth.Tokens)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":        {"DB_DRIVER": "mysql", "DB_PASSWORD": "x"},
		"postgres w/o password": {"DB_DRIVER": "postgres", "DB_PASSWORD": ""},
		"auth without tokens":   {"DB_DRIVER": "sqlite", "AUTH_REQUIRED": "true", "AUTH_TOKENS": ""},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
