package feed

import (
	"context"
	"errors"
	"fmt"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

const (
	DefaultLatestLimit = 3
	MaxLatestLimit     = 20
)

type feedRepository interface {
	LatestPosts(ctx context.Context, limit int) ([]entity.Post, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

type Options struct {
	repo feedRepository
}

func NewOptions(repo feedRepository) Options {
	return Options{repo: repo}
}

func (o *Options) Validate() error {
	if o.repo == nil {
		return errors.New("field `repo` is required")
	}

	return nil
}

type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate feed usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

// LatestPosts returns the newest posts. Non-positive limits fall back to the default.
func (u *Usecase) LatestPosts(ctx context.Context, limit int) ([]entity.Post, error) {
	switch {
	case limit <= 0:
		limit = DefaultLatestLimit
	case limit > MaxLatestLimit:
		limit = MaxLatestLimit
	}

	posts, err := u.repo.LatestPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("usecase latest posts: %w", err)
	}

	return posts, nil
}

func (u *Usecase) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := u.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase categories: %w", err)
	}

	return categories, nil
}
