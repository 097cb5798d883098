package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementation of the ProfileRepository port over PostgreSQL (usable with pool or tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository builds the persistence adapter for profiles. Pass pool or tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `id, name, email, phone, address, role, email_verified, password_hash, created_at, updated_at`

// Create persists a new profile.
func (r *ProfileRepo) Create(profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, name, email, phone, address, role, email_verified, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.Email, profile.Phone, profile.Address,
		profile.Role, profile.EmailVerified, profile.PasswordHash, profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile by id.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail fetches a profile by email. Emails are stored lowercased.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// Update writes editable profile fields. Email is immutable; role changes go
// through UpdateRole.
func (r *ProfileRepo) Update(profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, phone = $3, address = $4, email_verified = $5, password_hash = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.ID, profile.Name, profile.Phone, profile.Address,
		profile.EmailVerified, profile.PasswordHash, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdateRole sets the role for a profile.
func (r *ProfileRepo) UpdateRole(id, role string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE profiles SET role = $2, updated_at = now() WHERE id = $1`,
		id, role,
	)
	if err != nil {
		return fmt.Errorf("update profile role: %w", err)
	}
	return nil
}

// List returns profiles newest first with pagination.
func (r *ProfileRepo) List(limit, offset int) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address,
			&p.Role, &p.EmailVerified, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProfileRepo) scanOne(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address,
		&p.Role, &p.EmailVerified, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
