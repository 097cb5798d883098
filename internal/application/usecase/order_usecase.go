package usecase

import (
	"github.com/rjfoods/storefront-api/internal/application/checkout"
	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// OrderUseCase order reads and the admin status workflow. Orders are created
// only through checkout and never deleted.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase builds the use case.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// GetForUser fetches one order for its owner. Admins may read any order.
func (uc *OrderUseCase) GetForUser(orderID, userID string, isAdmin bool) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID && !isAdmin {
		return nil, domain.ErrForbidden
	}
	return checkout.ToOrderResponse(order), nil
}

// ListByUser returns a user's order history, newest first.
func (uc *OrderUseCase) ListByUser(userID string) (*dto.OrderListResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toOrderList(list, dto.PageResponse{Total: len(list)}), nil
}

// ListAdmin returns orders for the back office, filtered by status and a free
// search over id / customer name / phone.
func (uc *OrderUseCase) ListAdmin(status, search string, limit, offset int) (*dto.OrderListResponse, error) {
	if status != "" && !entity.KnownStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(repository.OrderFilter{
		Status: status,
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return toOrderList(list, dto.PageResponse{Limit: limit, Offset: offset}), nil
}

// UpdateStatus sets an order's status. Any member of the known status set may
// be applied from any current status; the open workflow is intentional (see
// DESIGN.md) and only membership is enforced.
func (uc *OrderUseCase) UpdateStatus(orderID, status string) (*dto.OrderResponse, error) {
	if !entity.KnownStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return checkout.ToOrderResponse(order), nil
}

func toOrderList(list []*entity.Order, page dto.PageResponse) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *checkout.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Page: page}
}
