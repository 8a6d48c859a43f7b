package entity

import "time"

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Color       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Post struct {
	ID            int64
	Title         string
	Slug          string
	Excerpt       string
	CoverImageURL string
	ViewCount     int64
	Content       string
	Status        string
	AuthorID      string
	CategoryID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Category is nil when the post has no category or the reference is dangling.
	Category *Category
}
