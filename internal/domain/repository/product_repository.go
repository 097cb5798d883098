package repository

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// ProductRepository is the persistence port for Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// List returns products newest first; category narrows when non-empty.
	List(category string, limit, offset int) ([]*entity.Product, error)
}
