package repository

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// PageContentRepository is the persistence port for stored page overrides (DIP).
// Get returns (nil, nil) when no override exists for the slug; callers fall back
// to the compiled-in defaults.
type PageContentRepository interface {
	Get(slug string) (*entity.PageContent, error)
	Upsert(page *entity.PageContent) error
	List() ([]*entity.PageContent, error)
}
