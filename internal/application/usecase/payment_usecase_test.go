package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

func TestPaymentCreateActiveByDefault(t *testing.T) {
	var saved *entity.PaymentMethod
	repo := &mockPaymentRepo{
		getByNameFn: func(name string) (*entity.PaymentMethod, error) { return nil, nil },
		createFn:    func(p *entity.PaymentMethod) error { saved = p; return nil },
	}
	uc := NewPaymentUseCase(repo)

	got, err := uc.Create(dto.CreatePaymentMethodRequest{Name: "JazzCash", Number: "0300-1234567"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, entity.PaymentActive, saved.Status)
	assert.Equal(t, entity.PaymentActive, got.Status)
}

func TestPaymentCreateDuplicateName(t *testing.T) {
	repo := &mockPaymentRepo{
		getByNameFn: func(name string) (*entity.PaymentMethod, error) {
			return &entity.PaymentMethod{ID: "pm1", Name: name}, nil
		},
	}
	uc := NewPaymentUseCase(repo)

	_, err := uc.Create(dto.CreatePaymentMethodRequest{Name: "JazzCash", Number: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPaymentSetStatus(t *testing.T) {
	method := &entity.PaymentMethod{ID: "pm1", Name: "EasyPaisa", Status: entity.PaymentActive}
	var gotStatus string
	repo := &mockPaymentRepo{
		getByIDFn:      func(id string) (*entity.PaymentMethod, error) { return method, nil },
		updateStatusFn: func(id, status string) error { gotStatus = status; return nil },
	}
	uc := NewPaymentUseCase(repo)

	got, err := uc.SetStatus("pm1", entity.PaymentInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentInactive, gotStatus)
	assert.Equal(t, entity.PaymentInactive, got.Status)
}

func TestPaymentSetStatusValidatesValue(t *testing.T) {
	uc := NewPaymentUseCase(&mockPaymentRepo{})

	_, err := uc.SetStatus("pm1", "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentSetStatusMissing(t *testing.T) {
	repo := &mockPaymentRepo{
		getByIDFn: func(id string) (*entity.PaymentMethod, error) { return nil, nil },
	}
	uc := NewPaymentUseCase(repo)

	_, err := uc.SetStatus("nope", entity.PaymentInactive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
