package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

var _ repository.PageContentRepository = (*PageContentRepo)(nil)

// PageContentRepo implementation of the PageContentRepository port over PostgreSQL.
// Rows here are admin overrides; compiled-in defaults never touch this table.
type PageContentRepo struct {
	q Querier
}

// NewPageContentRepository builds the persistence adapter for content pages.
func NewPageContentRepository(q Querier) *PageContentRepo {
	return &PageContentRepo{q: q}
}

// Get fetches an override by slug.
func (r *PageContentRepo) Get(slug string) (*entity.PageContent, error) {
	query := `SELECT slug, title, content, updated_at FROM content_pages WHERE slug = $1`
	var p entity.PageContent
	err := r.q.QueryRow(context.Background(), query, slug).Scan(&p.Slug, &p.Title, &p.Content, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	return &p, nil
}

// Upsert writes an override, replacing any previous one for the slug.
func (r *PageContentRepo) Upsert(page *entity.PageContent) error {
	query := `
		INSERT INTO content_pages (slug, title, content, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET title = $2, content = $3, updated_at = $4`
	_, err := r.q.Exec(context.Background(), query, page.Slug, page.Title, page.Content, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert page: %w", err)
	}
	return nil
}

// List returns every stored override.
func (r *PageContentRepo) List() ([]*entity.PageContent, error) {
	query := `SELECT slug, title, content, updated_at FROM content_pages ORDER BY slug`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()
	var list []*entity.PageContent
	for rows.Next() {
		var p entity.PageContent
		if err := rows.Scan(&p.Slug, &p.Title, &p.Content, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
