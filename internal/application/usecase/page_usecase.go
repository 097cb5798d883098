package usecase

import (
	"time"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/content"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// PageUseCase dynamic content pages. A stored override shadows the compiled-in
// default for the same slug; with neither the page does not exist.
type PageUseCase struct {
	repo repository.PageContentRepository
}

// NewPageUseCase builds the use case.
func NewPageUseCase(repo repository.PageContentRepository) *PageUseCase {
	return &PageUseCase{repo: repo}
}

// Get resolves a slug: stored override first, then default. The response marks
// which one served it. A store error also falls back to the default rather
// than failing the page.
func (uc *PageUseCase) Get(slug string) (*dto.PageContentResponse, error) {
	stored, err := uc.repo.Get(slug)
	if err == nil && stored != nil {
		return storedPage(stored), nil
	}
	if def := content.Default(slug); def != nil {
		return defaultPage(def), nil
	}
	if err != nil {
		return nil, err
	}
	return nil, domain.ErrNotFound
}

// Save upserts an override for slug. Saving over a default-only slug creates
// the override; the default remains as the fallback if ever removed.
func (uc *PageUseCase) Save(slug string, in dto.SavePageRequest) (*dto.PageContentResponse, error) {
	page := &entity.PageContent{
		Slug:      slug,
		Title:     in.Title,
		Content:   in.Content,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Upsert(page); err != nil {
		return nil, err
	}
	return storedPage(page), nil
}

// List returns every page the back office can edit: stored overrides plus the
// defaults that have no override yet, in default display order.
func (uc *PageUseCase) List() ([]dto.PageContentResponse, error) {
	stored, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]*entity.PageContent, len(stored))
	for _, p := range stored {
		bySlug[p.Slug] = p
	}

	out := make([]dto.PageContentResponse, 0, len(content.DefaultPages)+len(stored))
	seen := make(map[string]bool)
	for i := range content.DefaultPages {
		def := content.DefaultPages[i]
		seen[def.Slug] = true
		if p, ok := bySlug[def.Slug]; ok {
			out = append(out, *storedPage(p))
			continue
		}
		out = append(out, *defaultPage(&def))
	}
	// overrides for slugs that have no compiled-in default
	for _, p := range stored {
		if !seen[p.Slug] {
			out = append(out, *storedPage(p))
		}
	}
	return out, nil
}

func storedPage(p *entity.PageContent) *dto.PageContentResponse {
	updated := p.UpdatedAt
	return &dto.PageContentResponse{
		Slug:       p.Slug,
		Title:      p.Title,
		Content:    p.Content,
		Customized: true,
		UpdatedAt:  &updated,
	}
}

func defaultPage(p *entity.PageContent) *dto.PageContentResponse {
	return &dto.PageContentResponse{
		Slug:       p.Slug,
		Title:      p.Title,
		Content:    p.Content,
		Customized: false,
	}
}
