package service

import (
	"errors"
	"time"

	"github.com/ClarkyAU/passforge/internal/crypto"
	"github.com/ClarkyAU/passforge/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrPasswordRequired   = errors.New("password is required")

	// ErrAuthNotConfigured is returned when the server has no admin
	// password hash to check against.
	ErrAuthNotConfigured = errors.New("admin authentication is not configured")
)

// AuthService authenticates the single admin against the configured argon2
// hash and issues JWTs for the wordlist management routes.
type AuthService struct {
	adminHash string
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService. adminHash is the PHC-encoded
// argon2id hash from configuration; empty means logins always fail.
func NewAuthService(adminHash, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		adminHash: adminHash,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login verifies the admin password and returns a signed token.
func (s *AuthService) Login(req model.LoginRequest) (model.AuthResponse, error) {
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if s.adminHash == "" {
		return model.AuthResponse{}, ErrAuthNotConfigured
	}

	match, err := crypto.VerifyPassword(req.Password, s.adminHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateAdminToken(s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtExpiry).UTC(),
	}, nil
}
