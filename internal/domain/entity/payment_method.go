package entity

import "time"

// Payment method statuses.
const (
	PaymentActive   = "active"
	PaymentInactive = "inactive"
)

// PaymentMethod is an administrator-owned payout destination offered at checkout
// in addition to cash on delivery. Number holds the account number or transfer
// instructions shown to the customer.
type PaymentMethod struct {
	ID        string
	Name      string
	Number    string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
