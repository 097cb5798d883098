package entity

import "github.com/shopspring/decimal"

// CartItem is a product snapshot paired with a quantity. It lives only in the
// in-memory cart until checkout copies it into an order; quantity is always >= 1
// (a decrement past zero removes the line instead).
type CartItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Category  string
	ImageURL  string
	Quantity  int
}

// Subtotal returns price × quantity for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
