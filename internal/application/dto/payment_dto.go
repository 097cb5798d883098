package dto

import "time"

// CreatePaymentMethodRequest admin input for a payout destination.
type CreatePaymentMethodRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Number string `json:"number" validate:"required,max=200"`
}

// UpdatePaymentStatusRequest toggles a method active/inactive.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// PaymentMethodResponse a payout destination. Number is the account number or
// transfer instructions shown to the customer at checkout.
type PaymentMethodResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
