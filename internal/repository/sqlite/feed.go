package sqlite

import (
	"context"
	"database/sql"

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
LIMIT ?`

	categoriesQuery = `
SELECT id, name, slug, color, description, created_at, updated_at
FROM categories
ORDER BY name ASC, id ASC`
)

func (r *Repo) LatestPosts(ctx context.Context, limit int) ([]entity.Post, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, latestPostsQuery, limit)
	if err != nil {
		return nil, entity.NewStoreError("latest posts", err)
	}
	defer rows.Close()

	posts := make([]entity.Post, 0, limit)
	for rows.Next() {
		var (
			p                      entity.Post
			categoryID             sql.NullInt64
			createdAt, updatedAt   string
			catID                  sql.NullInt64
			catName, catSlug       sql.NullString
			catColor, catDesc      sql.NullString
			catCreated, catUpdated sql.NullString
		)

		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.CoverImageURL, &p.ViewCount, &p.Content,
			&p.Status, &p.AuthorID, &categoryID, &createdAt, &updatedAt,
			&catID, &catName, &catSlug, &catColor, &catDesc, &catCreated, &catUpdated,
		); err != nil {
			return nil, entity.NewStoreError("scan post", err)
		}

		if categoryID.Valid {
			id := categoryID.Int64
			p.CategoryID = &id
		}
		if p.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, entity.NewStoreError("scan post", err)
		}
		if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, entity.NewStoreError("scan post", err)
		}

		if catID.Valid {
			c := &entity.Category{
				ID:          catID.Int64,
				Name:        catName.String,
				Slug:        catSlug.String,
				Color:       catColor.String,
				Description: catDesc.String,
			}
			if c.CreatedAt, err = parseTime(catCreated.String); err != nil {
				return nil, entity.NewStoreError("scan post category", err)
			}
			if c.UpdatedAt, err = parseTime(catUpdated.String); err != nil {
				return nil, entity.NewStoreError("scan post category", err)
			}
			p.Category = c
		}

		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("latest posts", err)
	}

	return posts, nil
}

func (r *Repo) Categories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, categoriesQuery)
	if err != nil {
		return nil, entity.NewStoreError("categories", err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var (
			c                    entity.Category
			createdAt, updatedAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.Description, &createdAt, &updatedAt); err != nil {
			return nil, entity.NewStoreError("scan category", err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, entity.NewStoreError("scan category", err)
		}
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, entity.NewStoreError("scan category", err)
		}

		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, entity.NewStoreError("categories", err)
	}

	return categories, nil
}
