// Package repotest is a compliance suite shared by the store adapters.
package repotest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

type Repository interface {
	SaveMemo(ctx context.Context, userID, date, text string) (entity.Memo, error)
	FetchMemos(ctx context.Context, userID string, year int, month time.Month) ([]entity.Memo, error)
	MemoOwner(ctx context.Context, id int64) (string, error)
	DeleteMemo(ctx context.Context, id int64) error
	RunInTx(ctx context.Context, f func(context.Context) error) error

	LatestPosts(ctx context.Context, limit int) ([]entity.Post, error)
	Categories(ctx context.Context) ([]entity.Category, error)
}

// Seeder writes feed fixtures; the feed itself is read-only.
type Seeder interface {
	SeedCategory(ctx context.Context, name, slug, color string) (int64, error)
	SeedPost(ctx context.Context, title, slug string, categoryID *int64, createdAt time.Time) (int64, error)
}

// Run exercises the repository contract. makeRepo must return an empty store.
func Run(t *testing.T, makeRepo func(t *testing.T) (Repository, Seeder)) {
	t.Helper()

	t.Run("upsert keeps one memo per day", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		user := newUser()

		first, err := repo.SaveMemo(ctx, user, "2024-03-05", "standup")
		require.NoError(t, err)
		assert.NotZero(t, first.ID)
		assert.Equal(t, user, first.UserID)
		assert.Equal(t, "2024-03-05", first.Date)
		assert.Equal(t, "standup", first.Text)

		memos, err := repo.FetchMemos(ctx, user, 2024, time.March)
		require.NoError(t, err)
		require.Len(t, memos, 1)
		assert.Equal(t, "standup", memos[0].Text)

		second, err := repo.SaveMemo(ctx, user, "2024-03-05", "standup v2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "standup v2", second.Text)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

		memos, err = repo.FetchMemos(ctx, user, 2024, time.March)
		require.NoError(t, err)
		require.Len(t, memos, 1)
		assert.Equal(t, "2024-03-05", memos[0].Date)
		assert.Equal(t, "standup v2", memos[0].Text)
	})

	t.Run("leap february window", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		user := newUser()

		for _, d := range []string{"2024-03-01", "2024-02-29", "2024-01-31", "2024-02-01"} {
			_, err := repo.SaveMemo(ctx, user, d, "memo "+d)
			require.NoError(t, err)
		}

		memos, err := repo.FetchMemos(ctx, user, 2024, time.February)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-02-01", "2024-02-29"}, dates(memos))
	})

	t.Run("plain february window", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		user := newUser()

		for _, d := range []string{"2023-02-28", "2023-03-01", "2023-01-31"} {
			_, err := repo.SaveMemo(ctx, user, d, "memo")
			require.NoError(t, err)
		}

		memos, err := repo.FetchMemos(ctx, user, 2023, time.February)
		require.NoError(t, err)
		assert.Equal(t, []string{"2023-02-28"}, dates(memos))
	})

	t.Run("fetch is ordered and scoped to user", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		alice, bob := newUser(), newUser()

		for _, d := range []string{"2024-05-20", "2024-05-02", "2024-05-11"} {
			_, err := repo.SaveMemo(ctx, alice, d, "alice")
			require.NoError(t, err)
		}
		_, err := repo.SaveMemo(ctx, bob, "2024-05-02", "bob")
		require.NoError(t, err)

		memos, err := repo.FetchMemos(ctx, alice, 2024, time.May)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-05-02", "2024-05-11", "2024-05-20"}, dates(memos))
		for _, m := range memos {
			assert.Equal(t, alice, m.UserID)
		}

		empty, err := repo.FetchMemos(ctx, newUser(), 2024, time.May)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("delete by id", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		user := newUser()

		m, err := repo.SaveMemo(ctx, user, "2024-06-01", "to delete")
		require.NoError(t, err)

		owner, err := repo.MemoOwner(ctx, m.ID)
		require.NoError(t, err)
		assert.Equal(t, user, owner)

		require.NoError(t, repo.DeleteMemo(ctx, m.ID))

		memos, err := repo.FetchMemos(ctx, user, 2024, time.June)
		require.NoError(t, err)
		assert.Empty(t, memos)

		_, err = repo.MemoOwner(ctx, m.ID)
		assert.ErrorIs(t, err, entity.ErrMemoNotFound)

		assert.NoError(t, repo.DeleteMemo(ctx, m.ID))
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		repo, _ := makeRepo(t)

		_, err := repo.SaveMemo(context.Background(), newUser(), "2024-3-5", "x")
		assert.True(t, entity.IsValidation(err), "got %v", err)
	})

	t.Run("transaction rollback discards writes", func(t *testing.T) {
		repo, _ := makeRepo(t)
		ctx := context.Background()
		user := newUser()
		boom := errors.New("boom")

		err := repo.RunInTx(ctx, func(ctx context.Context) error {
			if _, err := repo.SaveMemo(ctx, user, "2024-07-04", "rolled back"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		memos, err := repo.FetchMemos(ctx, user, 2024, time.July)
		require.NoError(t, err)
		assert.Empty(t, memos)
	})

	t.Run("latest posts with optional category", func(t *testing.T) {
		repo, seed := makeRepo(t)
		ctx := context.Background()
		base := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

		goID, err := seed.SeedCategory(ctx, "Go", "go", "#00add8")
		require.NoError(t, err)
		_, err = seed.SeedCategory(ctx, "Essays", "essays", "#f59e0b")
		require.NoError(t, err)

		_, err = seed.SeedPost(ctx, "oldest", "oldest", &goID, base)
		require.NoError(t, err)
		_, err = seed.SeedPost(ctx, "uncategorized", "uncategorized", nil, base.Add(time.Hour))
		require.NoError(t, err)
		_, err = seed.SeedPost(ctx, "middle", "middle", &goID, base.Add(2*time.Hour))
		require.NoError(t, err)
		_, err = seed.SeedPost(ctx, "newest", "newest", &goID, base.Add(3*time.Hour))
		require.NoError(t, err)

		posts, err := repo.LatestPosts(ctx, 3)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "newest", posts[0].Title)
		assert.Equal(t, "middle", posts[1].Title)
		assert.Equal(t, "uncategorized", posts[2].Title)

		require.NotNil(t, posts[0].Category)
		assert.Equal(t, "Go", posts[0].Category.Name)
		assert.Equal(t, "#00add8", posts[0].Category.Color)
		assert.Nil(t, posts[2].Category)
		assert.Nil(t, posts[2].CategoryID)

		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Essays", categories[0].Name)
		assert.Equal(t, "go", categories[1].Slug)
	})
}

func newUser() string {
	return "user_" + uuid.NewString()
}

func dates(memos []entity.Memo) []string {
	out := make([]string, 0, len(memos))
	for _, m := range memos {
		out = append(out, m.Date)
	}

	return out
}
