package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Prices are whole minor-currency units (PKR);
// stored as NUMERIC and handled as decimals end to end.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
