package user

import (
	"context"
	"time"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
)

// Repository handles user persistence.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)
	UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs session tokens and validates refresh tokens.
type TokenIssuer interface {
	GenerateAccessToken(userID kernel.UserID) (string, error)
	GenerateRefreshToken(userID kernel.UserID) (string, error)
	ValidateRefreshToken(token string) (kernel.UserID, error)
}

// ResetTokenStore holds single-use password reset tokens with a TTL.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, userID kernel.UserID, ttl time.Duration) error

	// Consume returns the user the token was issued for and invalidates it.
	// A token can be consumed at most once.
	Consume(ctx context.Context, token string) (kernel.UserID, error)
}
