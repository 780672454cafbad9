package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
)

// User is an account in the tracker. The password is stored only as a
// bcrypt hash.
type User struct {
	ID           kernel.UserID
	Name         string
	Email        kernel.Email
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with a fresh ID and timestamps. The caller supplies
// an already-hashed password.
func NewUser(name string, email kernel.Email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:           kernel.NewUserID(uuid.New().String()),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
