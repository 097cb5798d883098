package repository

import "github.com/rjfoods/storefront-api/internal/domain/entity"

// ProfileRepository is the persistence port for Profile (DIP).
// Lookups return (nil, nil) when no row matches.
type ProfileRepository interface {
	Create(profile *entity.Profile) error
	GetByID(id string) (*entity.Profile, error)
	GetByEmail(email string) (*entity.Profile, error)
	Update(profile *entity.Profile) error
	UpdateRole(id, role string) error
	List(limit, offset int) ([]*entity.Profile, error)
}
