package usecase

import (
	"time"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

// UserUseCase profile self-service plus the admin user directory.
type UserUseCase struct {
	repo repository.ProfileRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Get fetches a profile by id.
func (uc *UserUseCase) Get(id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toUserProfileResponse(profile), nil
}

// UpdateProfile edits contact fields; nil fields stay unchanged. Email and role
// are not editable here.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Update(profile); err != nil {
		return nil, err
	}
	return toUserProfileResponse(profile), nil
}

// List returns profiles for the admin users tab.
func (uc *UserUseCase) List(limit, offset int) (*dto.ProfileListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toUserProfileResponse(p))
	}
	return &dto.ProfileListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ToggleRole flips a profile between user and admin. The admin guard reads the
// stored role, so the change applies to the target's existing session on their
// next request.
func (uc *UserUseCase) ToggleRole(id string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	newRole := entity.RoleAdmin
	if profile.Role == entity.RoleAdmin {
		newRole = entity.RoleUser
	}
	if err := uc.repo.UpdateRole(id, newRole); err != nil {
		return nil, err
	}
	profile.Role = newRole
	return toUserProfileResponse(profile), nil
}

func toUserProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		Address:       p.Address,
		Role:          p.Role,
		EmailVerified: p.EmailVerified,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
