package memoclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...OptOptionsSetter) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(NewOptions(srv.URL, opts...))
	require.NoError(t, err)

	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(NewOptions(""))
	require.Error(t, err)

	_, err = New(NewOptions("not a url"))
	require.Error(t, err)

	_, err = New(NewOptions("http://localhost:8081", WithTimeout(0)))
	require.Error(t, err)
}

func TestSaveMemo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/calendar-memos", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req v1.SaveMemoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, v1.SaveMemoRequest{UserID: "u1", Date: "2024-03-05", Text: "standup"}, req)

		writeJSON(w, http.StatusOK, v1.MemoResponse{Data: v1.Memo{ID: 4, UserID: req.UserID, Date: req.Date, Text: req.Text}})
	}, WithToken("tok"))

	m, err := c.SaveMemo(context.Background(), "u1", "2024-03-05", "standup")
	require.NoError(t, err)
	assert.Equal(t, int64(4), m.ID)
	assert.Equal(t, "standup", m.Text)
}

func TestFetchMemos(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "u1", q.Get("userId"))
		assert.Equal(t, "2024", q.Get("year"))
		assert.Equal(t, "2", q.Get("month"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, v1.MemosResponse{Data: []v1.Memo{{ID: 1, Date: "2024-02-29"}}})
	})

	memos, err := c.FetchMemos(context.Background(), "u1", 2024, 2)
	require.NoError(t, err)
	require.Len(t, memos, 1)
	assert.Equal(t, "2024-02-29", memos[0].Date)
}

func TestDeleteMemo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/calendar-memos/42", r.URL.Path)

		writeJSON(w, http.StatusOK, v1.DeleteResponse{Success: true})
	})

	require.NoError(t, c.DeleteMemo(context.Background(), 42))
}

func TestAPIErrorCarriesMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, v1.ErrorResponse{Error: "Missing required parameters"})
	})

	_, err := c.FetchMemos(context.Background(), "", 2024, 3)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing required parameters", apiErr.Message)
}

func TestFeed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/posts/latest":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			writeJSON(w, http.StatusOK, v1.FeedResponse[v1.Post]{Success: true, Data: []v1.Post{{ID: 1, Title: "hello"}}})
		case "/api/categories":
			writeJSON(w, http.StatusInternalServerError, v1.FeedResponse[v1.Category]{Error: "Failed to fetch categories"})
		default:
			http.NotFound(w, r)
		}
	})

	posts, err := c.LatestPosts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "no category", posts[0].CategoryName())

	_, err = c.Categories(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to fetch categories", apiErr.Message)
}
