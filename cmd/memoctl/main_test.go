package main

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/blog-calendar/internal/api/httpapi"
	"github.com/evgeniy-krivenko/blog-calendar/internal/migrations"
	"github.com/evgeniy-krivenko/blog-calendar/internal/repository/sqlite"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/feed"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/memos"
)

type noopPinger struct{}

func (noopPinger) Ping(context.Context) error { return nil }

func newServer(t *testing.T) (string, *sql.DB) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db, migrations.SQLite))

	repo := sqlite.New(db)
	memosUC, err := memos.New(memos.NewOptions(repo))
	require.NoError(t, err)
	feedUC, err := feed.New(feed.NewOptions(repo))
	require.NoError(t, err)

	srv := httptest.NewServer(httpapi.NewRouter(httpapi.NewHandler(memosUC, feedUC, noopPinger{})))
	t.Cleanup(srv.Close)

	return srv.URL, db
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestMemoCommands(t *testing.T) {
	api, _ := newServer(t)

	out, err := execute(t, "save", "--api", api, "-u", "u1", "-d", "2024-03-05", "-m", "standup")
	require.NoError(t, err)
	assert.Contains(t, out, "for 2024-03-05")

	_, err = execute(t, "save", "--api", api, "-u", "u1", "-d", "2024-03-05", "-m", "standup v2")
	require.NoError(t, err)

	out, err = execute(t, "list", "--api", api, "-u", "u1", "-y", "2024", "-M", "3")
	require.NoError(t, err)
	assert.Equal(t, "1\t2024-03-05\tstandup v2\n", out)

	out, err = execute(t, "delete", "--api", api, "1")
	require.NoError(t, err)
	assert.Equal(t, "Memo deleted successfully\n", out)

	out, err = execute(t, "list", "--api", api, "-u", "u1", "-y", "2024", "-M", "3")
	require.NoError(t, err)
	assert.Equal(t, "no memos\n", out)
}

func TestSaveRejectsBadDate(t *testing.T) {
	api, _ := newServer(t)

	_, err := execute(t, "save", "--api", api, "-u", "u1", "-d", "2023-02-29", "-m", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestUserRequiredWithoutToken(t *testing.T) {
	_, err := execute(t, "list", "--api", "http://localhost:8081")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user")
}

func TestDeleteRejectsBadID(t *testing.T) {
	_, err := execute(t, "delete", "--api", "http://localhost:8081", "abc")
	require.Error(t, err)
}

func TestFeedCommand(t *testing.T) {
	api, db := newServer(t)

	ts := "2024-03-05T10:00:00.000000Z"
	_, err := db.Exec(`INSERT INTO categories (name, slug, color, created_at, updated_at) VALUES ('Go', 'go', '#00ADD8', ?, ?)`, ts, ts)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (title, slug, category_id, created_at, updated_at) VALUES ('Generics', 'generics', 1, ?, ?)`, ts, ts)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (title, slug, created_at, updated_at) VALUES ('Notes', 'notes', ?, ?)`, ts, ts)
	require.NoError(t, err)

	out, err := execute(t, "feed", "--api", api)
	require.NoError(t, err)
	assert.Contains(t, out, "Generics [Go]")
	assert.Contains(t, out, "Notes [no category]")
	assert.Contains(t, out, "Go (go)")
}
