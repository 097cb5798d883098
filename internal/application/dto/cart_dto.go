package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest puts one unit of a product in the cart (or increments the
// existing line).
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// UpdateCartItemRequest adjusts a line's quantity by Delta. A resulting
// quantity <= 0 removes the line.
type UpdateCartItemRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartItemResponse one cart line.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse the full cart with derived count and total.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
}
