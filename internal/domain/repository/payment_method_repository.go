package repository

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// PaymentMethodRepository is the persistence port for PaymentMethod (DIP).
type PaymentMethodRepository interface {
	Create(method *entity.PaymentMethod) error
	GetByID(id string) (*entity.PaymentMethod, error)
	GetByName(name string) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
	ListActive() ([]*entity.PaymentMethod, error)
	UpdateStatus(id, status string) error
}
