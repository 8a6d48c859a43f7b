package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/blog-calendar/internal/migrations"
	"github.com/evgeniy-krivenko/blog-calendar/internal/repository/sqlite"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/feed"
	"github.com/evgeniy-krivenko/blog-calendar/internal/usecase/memos"
	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

func newSQLiteServer(t *testing.T) http.Handler {
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

	return NewRouter(NewHandler(memosUC, feedUC, fakePinger{}))
}

func fetchMonth(t *testing.T, h http.Handler, user string, year, month int) []v1.Memo {
	t.Helper()

	rr := do(t, h, http.MethodGet, fmt.Sprintf("/api/calendar-memos?userId=%s&year=%d&month=%d", user, year, month), nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp v1.MemosResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp.Data
}

func saveMemo(t *testing.T, h http.Handler, user, date, text string) v1.Memo {
	t.Helper()

	rr := do(t, h, http.MethodPost, "/api/calendar-memos", v1.SaveMemoRequest{UserID: user, Date: date, Text: text})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp v1.MemoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp.Data
}

func TestMemoLifecycle(t *testing.T) {
	h := newSQLiteServer(t)

	first := saveMemo(t, h, "u1", "2024-03-05", "standup")
	assert.Positive(t, first.ID)

	got := fetchMonth(t, h, "u1", 2024, 3)
	require.Len(t, got, 1)
	assert.Equal(t, "standup", got[0].Text)

	second := saveMemo(t, h, "u1", "2024-03-05", "standup v2")
	assert.Equal(t, first.ID, second.ID)

	got = fetchMonth(t, h, "u1", 2024, 3)
	require.Len(t, got, 1)
	assert.Equal(t, "standup v2", got[0].Text)

	assert.Empty(t, fetchMonth(t, h, "u2", 2024, 3))

	rr := do(t, h, http.MethodDelete, fmt.Sprintf("/api/calendar-memos/%d", first.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, fetchMonth(t, h, "u1", 2024, 3))

	rr = do(t, h, http.MethodDelete, fmt.Sprintf("/api/calendar-memos/%d", first.ID), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLeapDayWindow(t *testing.T) {
	h := newSQLiteServer(t)

	saveMemo(t, h, "u1", "2024-02-29", "leap")
	saveMemo(t, h, "u1", "2024-03-01", "march")
	saveMemo(t, h, "u1", "2024-01-31", "january")

	got := fetchMonth(t, h, "u1", 2024, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-02-29", got[0].Date)

	rr := do(t, h, http.MethodPost, "/api/calendar-memos", v1.SaveMemoRequest{UserID: "u1", Date: "2023-02-29", Text: "nope"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/calendar-memos?userId=u1&year=2024&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
