package model

import "time"

// LoginRequest represents an admin login request.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse carries the issued admin token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
