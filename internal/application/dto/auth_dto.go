package dto

import "time"

// RegisterRequest sign-up input. Password is plaintext here and hashed in the
// use case; contact fields seed the profile used to pre-fill checkout.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,max=30"`
	Address  string `json:"address" validate:"required,max=500"`
}

// LoginRequest sign-in input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token plus the signed-in profile.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// SessionResponse is the resolved session: identity plus profile when the
// profile fetch succeeds. Profile may be null (identity exists, document
// missing or unreadable); IsAdmin is false in that degraded state.
type SessionResponse struct {
	UserID        string           `json:"user_id"`
	EmailVerified bool             `json:"email_verified"`
	IsAdmin       bool             `json:"is_admin"`
	Profile       *ProfileResponse `json:"profile"`
}

// VerifyEmailRequest carries the token from the verification link.
type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// ForgotPasswordRequest requests a reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest carries the token from the reset link plus the new password.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileResponse a profile without credentials.
type ProfileResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateProfileRequest partial profile edit; nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

// ProfileListResponse admin user listing.
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
