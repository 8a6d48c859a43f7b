package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

type fakeRepo struct {
	gotLimit int
	err      error
}

func (f *fakeRepo) LatestPosts(_ context.Context, limit int) ([]entity.Post, error) {
	f.gotLimit = limit
	return []entity.Post{{ID: 1, Title: "hello"}}, f.err
}

func (f *fakeRepo) Categories(context.Context) ([]entity.Category, error) {
	return []entity.Category{{ID: 1, Name: "Go"}}, f.err
}

func TestLatestPostsLimit(t *testing.T) {
	repo := &fakeRepo{}
	uc, err := New(NewOptions(repo))
	require.NoError(t, err)

	for in, want := range map[int]int{0: DefaultLatestLimit, -5: DefaultLatestLimit, 7: 7, 500: MaxLatestLimit} {
		_, err := uc.LatestPosts(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, want, repo.gotLimit, "limit %d", in)
	}
}

func TestFeedErrors(t *testing.T) {
	repo := &fakeRepo{err: entity.NewStoreError("latest posts", errors.New("timeout"))}
	uc, err := New(NewOptions(repo))
	require.NoError(t, err)

	_, err = uc.LatestPosts(context.Background(), 3)
	assert.True(t, entity.IsStore(err))

	_, err = uc.Categories(context.Background())
	assert.True(t, entity.IsStore(err))
}
