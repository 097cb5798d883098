package repository

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// OrderFilter narrows admin order listings. Search matches order id, customer
// name or customer phone; Status filters on an exact status when non-empty.
type OrderFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// OrderRepository is the persistence port for Order (DIP).
// Create persists the order together with its item snapshot; orders are never
// deleted through the application.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	List(f OrderFilter) ([]*entity.Order, error)
	// ListAll feeds the sales report; orders carry their full item snapshots.
	ListAll() ([]*entity.Order, error)
	UpdateStatus(id, status string) error
}
