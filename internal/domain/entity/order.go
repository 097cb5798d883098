package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Status updates are admin-only and deliberately permissive:
// any known status may be set at any time (see DESIGN.md).
const (
	StatusPending        = "Pending"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

// OrderStatuses is the closed set of valid statuses, in display order.
var OrderStatuses = []string{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

// KnownStatus reports whether s is a member of the valid status set.
func KnownStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order is an immutable point-in-time snapshot of a cart plus fulfillment state.
// Items and Total are frozen at checkout and never recomputed from live products.
type Order struct {
	ID              string
	UserID          string
	Items           []CartItem
	Total           decimal.Decimal
	PaymentMethod   string // "COD" or a stored payment method name
	TransactionID   string // reference for non-COD payments
	Status          string
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
