// Package service declares the ports the use cases depend on. Each one is
// implemented under internal/infra and mocked under internal/mocks/service.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password produces hash. Any mismatch or
	// malformed hash is simply false.
	Check(password, hash string) bool
}

// Claims is the token payload. The subject is the only identity carried.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// GenerateToken signs a token for userID that expires after the configured TTL.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
