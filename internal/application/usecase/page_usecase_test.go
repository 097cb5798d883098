package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/content"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

func TestPageGetPrefersStoredOverride(t *testing.T) {
	stored := &entity.PageContent{
		Slug:      "terms-conditions",
		Title:     "Terms (edited)",
		Content:   "custom body",
		UpdatedAt: time.Now(),
	}
	repo := &mockPageRepo{
		getFn: func(slug string) (*entity.PageContent, error) { return stored, nil },
	}
	uc := NewPageUseCase(repo)

	got, err := uc.Get("terms-conditions")
	require.NoError(t, err)
	assert.True(t, got.Customized)
	assert.Equal(t, "Terms (edited)", got.Title)
	require.NotNil(t, got.UpdatedAt)
}

func TestPageGetFallsBackToDefault(t *testing.T) {
	repo := &mockPageRepo{
		getFn: func(slug string) (*entity.PageContent, error) { return nil, nil },
	}
	uc := NewPageUseCase(repo)

	got, err := uc.Get("privacy-policy")
	require.NoError(t, err)
	assert.False(t, got.Customized)
	assert.Nil(t, got.UpdatedAt)
	assert.NotEmpty(t, got.Content)
}

func TestPageGetDefaultSurvivesStoreError(t *testing.T) {
	repo := &mockPageRepo{
		getFn: func(slug string) (*entity.PageContent, error) { return nil, errors.New("db down") },
	}
	uc := NewPageUseCase(repo)

	got, err := uc.Get("refund-policy")
	require.NoError(t, err)
	assert.False(t, got.Customized)
}

func TestPageGetUnknownSlug(t *testing.T) {
	repo := &mockPageRepo{
		getFn: func(slug string) (*entity.PageContent, error) { return nil, nil },
	}
	uc := NewPageUseCase(repo)

	_, err := uc.Get("no-such-page")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPageSaveUpserts(t *testing.T) {
	var saved *entity.PageContent
	repo := &mockPageRepo{
		upsertFn: func(p *entity.PageContent) error { saved = p; return nil },
	}
	uc := NewPageUseCase(repo)

	got, err := uc.Save("cookie-policy", dto.SavePageRequest{Title: "Cookies", Content: "updated"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "cookie-policy", saved.Slug)
	assert.True(t, got.Customized)
}

func TestPageListMergesOverrides(t *testing.T) {
	stored := []*entity.PageContent{
		{Slug: "privacy-policy", Title: "Privacy (edited)", Content: "x", UpdatedAt: time.Now()},
		{Slug: "shipping-info", Title: "Shipping", Content: "y", UpdatedAt: time.Now()},
	}
	repo := &mockPageRepo{
		listFn: func() ([]*entity.PageContent, error) { return stored, nil },
	}
	uc := NewPageUseCase(repo)

	got, err := uc.List()
	require.NoError(t, err)
	require.Len(t, got, len(content.DefaultPages)+1)

	byName := make(map[string]dto.PageContentResponse, len(got))
	for _, p := range got {
		byName[p.Slug] = p
	}
	assert.True(t, byName["privacy-policy"].Customized)
	assert.Equal(t, "Privacy (edited)", byName["privacy-policy"].Title)
	assert.False(t, byName["terms-conditions"].Customized)
	assert.True(t, byName["shipping-info"].Customized)
}
