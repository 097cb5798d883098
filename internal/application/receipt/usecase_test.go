package receipt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

type mockOrderRepo struct {
	getByIDFn func(id string) (*entity.Order, error)
}

func (m *mockOrderRepo) Create(o *entity.Order) error                      { panic("unused") }
func (m *mockOrderRepo) GetByID(id string) (*entity.Order, error)          { return m.getByIDFn(id) }
func (m *mockOrderRepo) ListByUser(userID string) ([]*entity.Order, error) { panic("unused") }
func (m *mockOrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	panic("unused")
}
func (m *mockOrderRepo) ListAll() ([]*entity.Order, error)    { panic("unused") }
func (m *mockOrderRepo) UpdateStatus(id, status string) error { panic("unused") }

type mockGenerator struct {
	renderFn func(o *entity.Order) ([]byte, error)
}

func (m *mockGenerator) Render(o *entity.Order) ([]byte, error) { return m.renderFn(o) }

func TestGenerateOwner(t *testing.T) {
	repo := &mockOrderRepo{
		getByIDFn: func(id string) (*entity.Order, error) {
			return &entity.Order{ID: "4f2a9c1e-77aa-4c1b-9d3e-000000000000", UserID: "u1"}, nil
		},
	}
	gen := &mockGenerator{
		renderFn: func(o *entity.Order) ([]byte, error) { return []byte("%PDF-"), nil },
	}
	uc := NewUseCase(repo, gen)

	name, pdf, err := uc.Generate("4f2a9c1e-77aa-4c1b-9d3e-000000000000", "u1", false)
	require.NoError(t, err)
	assert.Equal(t, "receipt-4f2a9c1e.pdf", name)
	assert.NotEmpty(t, pdf)
}

func TestGenerateForbiddenForStranger(t *testing.T) {
	repo := &mockOrderRepo{
		getByIDFn: func(id string) (*entity.Order, error) {
			return &entity.Order{ID: "o1", UserID: "u1"}, nil
		},
	}
	gen := &mockGenerator{
		renderFn: func(o *entity.Order) ([]byte, error) { return []byte("%PDF-"), nil },
	}
	uc := NewUseCase(repo, gen)

	_, _, err := uc.Generate("o1", "u2", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, _, err = uc.Generate("o1", "u2", true)
	assert.NoError(t, err)
}

func TestGenerateMissingOrder(t *testing.T) {
	repo := &mockOrderRepo{
		getByIDFn: func(id string) (*entity.Order, error) { return nil, nil },
	}
	uc := NewUseCase(repo, &mockGenerator{})

	_, _, err := uc.Generate("nope", "u1", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerateRenderFailure(t *testing.T) {
	repo := &mockOrderRepo{
		getByIDFn: func(id string) (*entity.Order, error) {
			return &entity.Order{ID: "o1", UserID: "u1"}, nil
		},
	}
	gen := &mockGenerator{
		renderFn: func(o *entity.Order) ([]byte, error) { return nil, errors.New("font missing") },
	}
	uc := NewUseCase(repo, gen)

	_, _, err := uc.Generate("o1", "u1", false)
	assert.Error(t, err)
}
