package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rjfoods/storefront-api/internal/application/cart"
	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// CashOnDelivery is always offered; stored payment methods extend it.
const CashOnDelivery = "COD"

// CheckoutUseCase turns the current cart into a Pending order: validates input
// and payment method, snapshots items and total, persists transactionally, and
// clears the cart only after the order is committed. A persistence failure
// leaves the cart intact so the customer can retry.
type CheckoutUseCase struct {
	carts    *cart.Store
	payments repository.PaymentMethodRepository
	tx       TxRunner
}

// NewCheckoutUseCase builds the checkout use case.
func NewCheckoutUseCase(carts *cart.Store, payments repository.PaymentMethodRepository, tx TxRunner) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, payments: payments, tx: tx}
}

// PlaceOrder creates exactly one order from userID's cart.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.CustomerAddress) == "" {
		return nil, domain.ErrInvalidInput
	}

	items := uc.carts.Items(userID)
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	transactionID, err := uc.resolvePayment(in)
	if err != nil {
		return nil, err
	}

	// The total comes from the snapshot itself, not a second cart read, so a
	// concurrent cart mutation cannot desynchronize the two.
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items, // point-in-time copy, never a live reference
		Total:           total,
		PaymentMethod:   in.PaymentMethod,
		TransactionID:   transactionID,
		Status:          entity.StatusPending,
		CustomerName:    in.CustomerName,
		CustomerAddress: in.CustomerAddress,
		CustomerPhone:   in.CustomerPhone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(order)
	}); err != nil {
		return nil, err
	}

	uc.carts.Clear(userID)
	return ToOrderResponse(order), nil
}

// resolvePayment validates the selected method. COD needs no reference; any
// other method must exist, be active, and come with a transaction id.
func (uc *CheckoutUseCase) resolvePayment(in dto.CheckoutRequest) (string, error) {
	if in.PaymentMethod == CashOnDelivery {
		return "", nil
	}
	method, err := uc.payments.GetByName(in.PaymentMethod)
	if err != nil {
		return "", err
	}
	if method == nil || method.Status != entity.PaymentActive {
		return "", domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.TransactionID) == "" {
		return "", domain.ErrInvalidInput
	}
	return in.TransactionID, nil
}

// ToOrderResponse converts an order entity for API output.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.CartItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Category:  it.Category,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal(),
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		Total:           o.Total,
		PaymentMethod:   o.PaymentMethod,
		TransactionID:   o.TransactionID,
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerAddress: o.CustomerAddress,
		CustomerPhone:   o.CustomerPhone,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
