package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/blog-calendar/internal/entity"
)

const (
	latestPostsQuery = `
SELECT p.id, p.title, p.slug, p.excerpt, p.cover_image_url, p.view_count, p.content,
       p.status, p.author_id, p.category_id, p.created_at, p.updated_at,
       c.id, c.name, c.slug, c.color, c.description, c.created_at, c.updated_at
FROM posts p
LEFT JOIN categories c ON c.id = p.category_id
ORDER BY p.created_at DESC, p.id DESC
LIMIT $1`

	categoriesQuery = `
SELECT id, name, slug, color, description, created_at, updated_at
FROM categories
ORDER BY name ASC, id ASC`
)

func (r *Repo) LatestPosts(ctx context.Context, limit int) ([]entity.Post, error) {
	rows, err := r.db.Query(ctx, latestPostsQuery, limit)
	if err != nil {
		return nil, entity.NewStoreError("latest posts", err)
	}
	defer rows.Close()

	posts := make([]entity.Post, 0, limit)
	for rows.Next() {
		var (
			p                      entity.Post
			categoryID             pgtype.Int8
			createdAt, updatedAt   pgtype.Timestamptz
			catID                  pgtype.Int8
			catName, catSlug       pgtype.Text
			catColor, catDesc      pgtype.Text
			catCreated, catUpdated pgtype.Timestamptz
		)

		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.CoverImageURL, &p.ViewCount, &p.Content,
			&p.Status, &p.AuthorID, &categoryID, &createdAt, &updatedAt,
			&catID, &catName, &catSlug, &catColor, &catDesc, &catCreated, &catUpdated,
		); err != nil {
			return nil, entity.NewStoreError("scan post", err)
		}

		p.CategoryID = convertNullInt8(categoryID)
		p.CreatedAt = convertTimestamptzToTime(createdAt)
		p.UpdatedAt = convertTimestamptzToTime(updatedAt)

		if catID.Valid {
			p.Category = &entity.Category{
				ID:          catID.Int64,
				Name:        catName.String,
				Slug:        catSlug.String,
				Color:       catColor.String,
				Description: catDesc.String,
				CreatedAt:   convertTimestamptzToTime(catCreated),
				UpdatedAt:   convertTimestamptzToTime(catUpdated),
			}
		}

		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("latest posts", err)
	}

	return posts, nil
}

func (r *Repo) Categories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.db.Query(ctx, categoriesQuery)
	if err != nil {
		return nil, entity.NewStoreError("categories", err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var (
			c                    entity.Category
			createdAt, updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.Description, &createdAt, &updatedAt); err != nil {
			return nil, entity.NewStoreError("scan category", err)
		}

		c.CreatedAt = convertTimestamptzToTime(createdAt)
		c.UpdatedAt = convertTimestamptzToTime(updatedAt)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("categories", err)
	}

	return categories, nil
}
