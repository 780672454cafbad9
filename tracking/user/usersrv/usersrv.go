// Package usersrv implements account registration, login, and password
// reset.
package usersrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/pkg/logx"
	"github.com/Abraxas-365/jobtrack/tracking/user"
)

// Service handles user account operations.
type Service struct {
	repo       user.Repository
	hasher     user.PasswordHasher
	tokens     user.TokenIssuer
	resetStore user.ResetTokenStore
	resetTTL   time.Duration
}

// NewService creates the user service.
func NewService(
	repo user.Repository,
	hasher user.PasswordHasher,
	tokens user.TokenIssuer,
	resetStore user.ResetTokenStore,
	resetTTL time.Duration,
) *Service {
	return &Service{
		repo:       repo,
		hasher:     hasher,
		tokens:     tokens,
		resetStore: resetStore,
		resetTTL:   resetTTL,
	}
}

// Register creates an account and returns it with a first access token.
func (s *Service) Register(ctx context.Context, req user.RegisterRequest) (*user.User, string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, "", user.ErrMissingFields("name", "email", "password")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	u := user.NewUser(name, kernel.Email(email), hash)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to generate token", errx.TypeInternal)
	}

	logx.Infof("user registered: %s", u.ID)
	return u, token, nil
}

// Login verifies credentials and returns an access/refresh token pair.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req user.LoginRequest) (access, refresh string, err error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return "", "", user.ErrMissingFields("email", "password")
	}

	u, err := s.repo.GetByEmail(ctx, kernel.Email(email))
	if err != nil {
		return "", "", user.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, req.Password); err != nil {
		return "", "", user.ErrInvalidCredentials()
	}

	access, err = s.tokens.GenerateAccessToken(u.ID)
	if err != nil {
		return "", "", errx.Wrap(err, "failed to generate access token", errx.TypeInternal)
	}
	refresh, err = s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return "", "", errx.Wrap(err, "failed to generate refresh token", errx.TypeInternal)
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	// The account may have been deleted since the token was issued.
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return "", user.ErrInvalidToken()
	}

	access, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return "", errx.Wrap(err, "failed to generate access token", errx.TypeInternal)
	}
	return access, nil
}

// ForgotPassword issues a single-use reset token for the account.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	normalized := strings.TrimSpace(strings.ToLower(email))
	if normalized == "" {
		return "", user.ErrMissingFields("email")
	}

	u, err := s.repo.GetByEmail(ctx, kernel.Email(normalized))
	if err != nil {
		return "", err
	}

	token := uuid.New().String()
	if err := s.resetStore.Save(ctx, token, u.ID, s.resetTTL); err != nil {
		return "", errx.Wrap(err, "failed to store reset token", errx.TypeInternal)
	}

	logx.Infof("password reset token issued for user %s", u.ID)
	return token, nil
}

// ResetPassword consumes a reset token and sets a new password.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return user.ErrMissingFields("token", "newPassword")
	}

	userID, err := s.resetStore.Consume(ctx, token)
	if err != nil {
		return user.ErrInvalidResetToken()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	logx.Infof("password reset completed for user %s", userID)
	return nil
}
