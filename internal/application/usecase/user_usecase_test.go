package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
)

func TestUserUpdateProfileMergesFields(t *testing.T) {
	existing := &entity.Profile{
		ID:      "u1",
		Name:    "Ali Raza",
		Email:   "ali@example.com",
		Phone:   "0300-0000000",
		Address: "Old Street 1",
		Role:    entity.RoleUser,
	}
	var saved *entity.Profile
	repo := &mockProfileRepo{
		getByIDFn: func(id string) (*entity.Profile, error) { return existing, nil },
		updateFn:  func(p *entity.Profile) error { saved = p; return nil },
	}
	uc := NewUserUseCase(repo)

	addr := "New Street 5"
	got, err := uc.UpdateProfile("u1", dto.UpdateProfileRequest{Address: &addr})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "New Street 5", got.Address)
	assert.Equal(t, "Ali Raza", got.Name)
	assert.Equal(t, "ali@example.com", got.Email)
}

func TestUserUpdateProfileMissing(t *testing.T) {
	repo := &mockProfileRepo{
		getByIDFn: func(id string) (*entity.Profile, error) { return nil, nil },
	}
	uc := NewUserUseCase(repo)

	_, err := uc.UpdateProfile("nope", dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserToggleRole(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"promote", entity.RoleUser, entity.RoleAdmin},
		{"demote", entity.RoleAdmin, entity.RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRole string
			repo := &mockProfileRepo{
				getByIDFn: func(id string) (*entity.Profile, error) {
					return &entity.Profile{ID: id, Role: tt.from}, nil
				},
				updateRoleFn: func(id, role string) error { gotRole = role; return nil },
			}
			uc := NewUserUseCase(repo)

			got, err := uc.ToggleRole("u1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, gotRole)
			assert.Equal(t, tt.want, got.Role)
		})
	}
}

func TestUserListPagination(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockProfileRepo{
		listFn: func(limit, offset int) ([]*entity.Profile, error) {
			gotLimit, gotOffset = limit, offset
			return []*entity.Profile{{ID: "u1"}, {ID: "u2"}}, nil
		},
	}
	uc := NewUserUseCase(repo)

	out, err := uc.List(50, 100)
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit)
	assert.Equal(t, 100, gotOffset)
	assert.Len(t, out.Items, 2)
}
