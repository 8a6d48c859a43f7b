// Package memoclient is an HTTP client for the blog calendar API.
package memoclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.StatusCode)
	}

	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	Options
	http *resty.Client
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate memo client options: %v", err)
	}

	c := resty.New().
		SetBaseURL(opts.baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.timeout)

	if opts.token != "" {
		c.SetAuthToken(opts.token)
	}

	return &Client{Options: opts, http: c}, nil
}

func (c *Client) SaveMemo(ctx context.Context, userID, date, text string) (v1.Memo, error) {
	var out v1.MemoResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(v1.SaveMemoRequest{UserID: userID, Date: date, Text: text}).
		SetResult(&out).
		SetError(&v1.ErrorResponse{}).
		Post("/api/calendar-memos")
	if err := checkResponse(resp, err); err != nil {
		return v1.Memo{}, fmt.Errorf("save memo: %w", err)
	}

	return out.Data, nil
}

func (c *Client) FetchMemos(ctx context.Context, userID string, year, month int) ([]v1.Memo, error) {
	var out v1.MemosResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"userId": userID,
			"year":   strconv.Itoa(year),
			"month":  strconv.Itoa(month),
		}).
		SetResult(&out).
		SetError(&v1.ErrorResponse{}).
		Get("/api/calendar-memos")
	if err := checkResponse(resp, err); err != nil {
		return nil, fmt.Errorf("fetch memos: %w", err)
	}

	return out.Data, nil
}

func (c *Client) DeleteMemo(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&v1.DeleteResponse{}).
		SetError(&v1.ErrorResponse{}).
		Delete("/api/calendar-memos/{id}")
	if err := checkResponse(resp, err); err != nil {
		return fmt.Errorf("delete memo: %w", err)
	}

	return nil
}

// LatestPosts asks for the newest posts; limit <= 0 leaves the server default.
func (c *Client) LatestPosts(ctx context.Context, limit int) ([]v1.Post, error) {
	var out v1.FeedResponse[v1.Post]

	req := c.http.R().SetContext(ctx).SetResult(&out).SetError(&v1.ErrorResponse{})
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/posts/latest")
	if err := checkResponse(resp, err); err != nil {
		return nil, fmt.Errorf("latest posts: %w", err)
	}

	return out.Data, nil
}

func (c *Client) Categories(ctx context.Context) ([]v1.Category, error) {
	var out v1.FeedResponse[v1.Category]

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&v1.ErrorResponse{}).
		Get("/api/categories")
	if err := checkResponse(resp, err); err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	return out.Data, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	if resp.IsError() || resp.StatusCode() >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*v1.ErrorResponse); ok && body != nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	return nil
}
