package httpapi

import (
	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
	v1 "github.com/evgeniy-krivenko/blog-calendar/pkg/api/blog/v1"
)

func convertMemoToAPI(m entity.Memo) v1.Memo {
	return v1.Memo{
		ID:        m.ID,
		UserID:    m.UserID,
		Date:      m.Date,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func convertMemosToAPI(memos []entity.Memo) []v1.Memo {
	out := make([]v1.Memo, 0, len(memos))
	for _, m := range memos {
		out = append(out, convertMemoToAPI(m))
	}

	return out
}

func convertCategoryToAPI(c entity.Category) v1.Category {
	return v1.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Color:       c.Color,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func convertCategoriesToAPI(categories []entity.Category) []v1.Category {
	out := make([]v1.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, convertCategoryToAPI(c))
	}

	return out
}

func convertPostsToAPI(posts []entity.Post) []v1.Post {
	out := make([]v1.Post, 0, len(posts))
	for _, p := range posts {
		post := v1.Post{
			ID:            p.ID,
			Title:         p.Title,
			Slug:          p.Slug,
			Excerpt:       p.Excerpt,
			CoverImageURL: p.CoverImageURL,
			ViewCount:     p.ViewCount,
			Content:       p.Content,
			Status:        p.Status,
			AuthorID:      p.AuthorID,
			CategoryID:    p.CategoryID,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		}
		if p.Category != nil {
			c := convertCategoryToAPI(*p.Category)
			post.Category = &c
		}

		out = append(out, post)
	}

	return out
}
