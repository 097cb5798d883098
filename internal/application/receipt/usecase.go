// Package receipt produces the downloadable PDF receipt for an order.
package receipt

import (
	"fmt"

	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// Generator renders an order into PDF bytes.
type Generator interface {
	Render(order *entity.Order) ([]byte, error)
}

// UseCase fetches an order and renders its receipt. Only the owner or an
// admin may download it.
type UseCase struct {
	orders repository.OrderRepository
	gen    Generator
}

// NewUseCase builds the use case.
func NewUseCase(orders repository.OrderRepository, gen Generator) *UseCase {
	return &UseCase{orders: orders, gen: gen}
}

// Generate returns the receipt PDF and a download filename for the order.
func (uc *UseCase) Generate(orderID, userID string, isAdmin bool) (string, []byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return "", nil, err
	}
	if order == nil {
		return "", nil, domain.ErrNotFound
	}
	if order.UserID != userID && !isAdmin {
		return "", nil, domain.ErrForbidden
	}
	pdf, err := uc.gen.Render(order)
	if err != nil {
		return "", nil, fmt.Errorf("render receipt: %w", err)
	}
	return fmt.Sprintf("receipt-%s.pdf", shortID(order.ID)), pdf, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
