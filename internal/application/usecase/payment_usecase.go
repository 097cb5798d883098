package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// PaymentUseCase payment method administration plus the active listing shown
// at checkout.
type PaymentUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentUseCase builds the use case.
func NewPaymentUseCase(repo repository.PaymentMethodRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create adds a payout destination, active by default. Names are unique; a
// duplicate returns ErrDuplicate.
func (uc *PaymentUseCase) Create(in dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	method := &entity.PaymentMethod{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Number:    in.Number,
		Status:    entity.PaymentActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return toPaymentResponse(method), nil
}

// ListActive returns the methods offered at checkout.
func (uc *PaymentUseCase) ListActive() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// List returns every method for the back office.
func (uc *PaymentUseCase) List() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// SetStatus activates or deactivates a method.
func (uc *PaymentUseCase) SetStatus(id, status string) (*dto.PaymentMethodResponse, error) {
	if status != entity.PaymentActive && status != entity.PaymentInactive {
		return nil, domain.ErrInvalidInput
	}
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	method.Status = status
	return toPaymentResponse(method), nil
}

func toPaymentResponses(list []*entity.PaymentMethod) []dto.PaymentMethodResponse {
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toPaymentResponse(m))
	}
	return out
}

func toPaymentResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if m == nil {
		return nil
	}
	return &dto.PaymentMethodResponse{
		ID:        m.ID,
		Name:      m.Name,
		Number:    m.Number,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
