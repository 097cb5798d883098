package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest submits the current cart as an order. Contact fields are
// pre-filled from the profile client-side but submitted explicitly so the
// order keeps its own contact snapshot.
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerPhone   string `json:"customer_phone" validate:"required,max=30"`
	CustomerAddress string `json:"customer_address" validate:"required,max=500"`
	PaymentMethod   string `json:"payment_method" validate:"required"`
	TransactionID   string `json:"transaction_id" validate:"omitempty,max=200"`
}

// OrderResponse a placed order with its frozen item snapshot.
type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	Items           []CartItemResponse `json:"items"`
	Total           decimal.Decimal    `json:"total"`
	PaymentMethod   string             `json:"payment_method"`
	TransactionID   string             `json:"transaction_id,omitempty"`
	Status          string             `json:"status"`
	CustomerName    string             `json:"customer_name"`
	CustomerAddress string             `json:"customer_address"`
	CustomerPhone   string             `json:"customer_phone"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// OrderListResponse order listing (user history or admin view).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// UpdateOrderStatusRequest admin status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
