package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rjfoods/storefront-api/internal/application/dto"
	"github.com/rjfoods/storefront-api/internal/domain"
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
	"github.com/rjfoods/storefront-api/pkg/jwt"
)

// Token lifetimes for the mail flows.
const (
	verifyTokenMinutes = 60 * 24
	resetTokenMinutes  = 30
	resendMinInterval  = time.Minute
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminConfig automatic administrator assignment at sign-up: admin role when the
// email starts with EmailPrefix or equals BootstrapEmail. Compatibility behavior
// carried from the existing storefront accounts.
type AdminConfig struct {
	EmailPrefix    string
	BootstrapEmail string
}

// AuthUseCase authentication flows: registration, login, admin login, e-mail
// verification and password reset.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	mailer   Mailer
	jwtCfg   JWTConfig
	adminCfg AdminConfig

	// resend rate limit, per user
	mu         sync.Mutex
	lastResend map[string]time.Time
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(profiles repository.ProfileRepository, mailer Mailer, jwtCfg JWTConfig, adminCfg AdminConfig) *AuthUseCase {
	return &AuthUseCase{
		profiles:   profiles,
		mailer:     mailer,
		jwtCfg:     jwtCfg,
		adminCfg:   adminCfg,
		lastResend: make(map[string]time.Time),
	}
}

// Register creates a profile: hashes the password with bcrypt, assigns the role
// (admin when the email matches the configured heuristic) and sends the
// verification mail. Returns ErrEmailAlreadyExists on a duplicate address.
// A failed mail send does not fail the registration; the user can resend.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, _ := uc.profiles.GetByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	profile := &entity.Profile{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Email:         email,
		Phone:         in.Phone,
		Address:       in.Address,
		Role:          uc.roleFor(email),
		EmailVerified: false,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.profiles.Create(profile); err != nil {
		return nil, err
	}
	if token, err := jwt.GenerateScoped(uc.jwtCfg.Secret, profile.ID, jwt.ScopeVerifyEmail, uc.jwtCfg.Issuer, verifyTokenMinutes); err == nil {
		_ = uc.mailer.SendVerification(profile.Email, profile.Name, token)
	}
	return toProfileResponse(profile), nil
}

// roleFor applies the sign-up heuristic: admin when the email starts with the
// configured prefix or equals the bootstrap address, otherwise a regular user.
func (uc *AuthUseCase) roleFor(email string) string {
	if uc.adminCfg.EmailPrefix != "" && strings.HasPrefix(email, uc.adminCfg.EmailPrefix) {
		return entity.RoleAdmin
	}
	if uc.adminCfg.BootstrapEmail != "" && email == strings.ToLower(uc.adminCfg.BootstrapEmail) {
		return entity.RoleAdmin
	}
	return entity.RoleUser
}

// Login verifies email/password and returns a signed token plus the profile.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := uc.profiles.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toProfileResponse(profile)}, nil
}

// AdminLogin is Login plus a role check: non-admin accounts are rejected with
// ErrForbidden so the back-office form can show "access denied" instead of
// "bad credentials".
func (uc *AuthUseCase) AdminLogin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	out, err := uc.Login(in)
	if err != nil {
		return nil, err
	}
	if out.User.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return out, nil
}

// CurrentSession resolves the session for an authenticated user id. A missing
// or unreadable profile degrades to "authenticated without profile": the
// session is still returned, IsAdmin is false and Profile is nil. It never
// fails the request over a profile fetch.
func (uc *AuthUseCase) CurrentSession(userID string) *dto.SessionResponse {
	session := &dto.SessionResponse{UserID: userID}
	profile, err := uc.profiles.GetByID(userID)
	if err != nil || profile == nil {
		return session
	}
	session.Profile = toProfileResponse(profile)
	session.EmailVerified = profile.EmailVerified
	session.IsAdmin = profile.IsAdmin()
	return session
}

// VerifyEmail marks the account verified from a verification-link token.
func (uc *AuthUseCase) VerifyEmail(token string) error {
	claims, err := jwt.ParseScoped(uc.jwtCfg.Secret, token, jwt.ScopeVerifyEmail)
	if err != nil {
		return domain.ErrUnauthorized
	}
	profile, err := uc.profiles.GetByID(claims.UserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	if profile.EmailVerified {
		return nil // idempotent
	}
	profile.EmailVerified = true
	profile.UpdatedAt = time.Now()
	return uc.profiles.Update(profile)
}

// ResendVerification sends a fresh verification mail, rate limited per user.
// Returns ErrTooManyRequests within the cooldown window and ErrConflict when
// the address is already verified.
func (uc *AuthUseCase) ResendVerification(userID string) error {
	uc.mu.Lock()
	last, seen := uc.lastResend[userID]
	uc.mu.Unlock()
	if seen && time.Since(last) < resendMinInterval {
		return domain.ErrTooManyRequests
	}

	profile, err := uc.profiles.GetByID(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	if profile.EmailVerified {
		return domain.ErrConflict
	}
	token, err := jwt.GenerateScoped(uc.jwtCfg.Secret, profile.ID, jwt.ScopeVerifyEmail, uc.jwtCfg.Issuer, verifyTokenMinutes)
	if err != nil {
		return err
	}
	if err := uc.mailer.SendVerification(profile.Email, profile.Name, token); err != nil {
		return err
	}

	// The cooldown starts only once a mail actually went out; a failed send
	// can be retried immediately.
	uc.mu.Lock()
	uc.lastResend[userID] = time.Now()
	uc.mu.Unlock()
	return nil
}

// RequestPasswordReset mails a reset link when the address is registered.
// It reports success either way so the endpoint does not reveal which
// addresses exist.
func (uc *AuthUseCase) RequestPasswordReset(email string) error {
	profile, err := uc.profiles.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil || profile == nil {
		return nil
	}
	token, err := jwt.GenerateScoped(uc.jwtCfg.Secret, profile.ID, jwt.ScopePasswordReset, uc.jwtCfg.Issuer, resetTokenMinutes)
	if err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(profile.Email, profile.Name, token)
}

// ResetPassword sets a new password from a reset-link token.
func (uc *AuthUseCase) ResetPassword(token, newPassword string) error {
	claims, err := jwt.ParseScoped(uc.jwtCfg.Secret, token, jwt.ScopePasswordReset)
	if err != nil {
		return domain.ErrUnauthorized
	}
	profile, err := uc.profiles.GetByID(claims.UserID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	profile.PasswordHash = string(hash)
	profile.UpdatedAt = time.Now()
	return uc.profiles.Update(profile)
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
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
