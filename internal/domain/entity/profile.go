package entity

import "time"

// Valid roles for Profile.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the application-level record of a customer or administrator,
// keyed by the identity id issued at sign-up. One profile per identity.
type Profile struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Address       string
	Role          string // user, admin
	EmailVerified bool
	PasswordHash  string // bcrypt hash, never plaintext after persisting
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin reports whether the profile grants administrator capability.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
