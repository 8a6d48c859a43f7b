// Package v1 holds the JSON wire types of the blog HTTP API.
package v1

import "time"

type Memo struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type SaveMemoRequest struct {
	UserID string `json:"userId" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Text   string `json:"text"`
}

type MemoResponse struct {
	Data Memo `json:"data"`
}

type MemosResponse struct {
	Data []Memo `json:"data"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Post struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	CoverImageURL string    `json:"coverImageUrl"`
	ViewCount     int64     `json:"viewCount"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	AuthorID      string    `json:"authorId"`
	CategoryID    *int64    `json:"categoryId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Category      *Category `json:"category"`
}

// CategoryName is the display name of the post's category.
func (p Post) CategoryName() string {
	if p.Category == nil {
		return "no category"
	}

	return p.Category.Name
}

type FeedResponse[T any] struct {
	Success bool   `json:"success"`
	Data    []T    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
