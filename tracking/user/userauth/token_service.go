// Package userauth issues and validates session tokens and guards routes
// that require a signed-in user.
package userauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/user"
)

type tokenKind string

const (
	tokenAccess  tokenKind = "access"
	tokenRefresh tokenKind = "refresh"
)

type sessionClaims struct {
	UserID string    `json:"userId"`
	Kind   tokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService signs short-lived access tokens and long-lived refresh tokens
// with separate secrets, so a leaked refresh secret cannot forge access
// tokens and vice versa.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenService creates a token service.
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GenerateAccessToken signs a new access token for the user.
func (s *TokenService) GenerateAccessToken(userID kernel.UserID) (string, error) {
	return s.sign(userID, tokenAccess, s.accessSecret, s.accessTTL)
}

// GenerateRefreshToken signs a new refresh token for the user.
func (s *TokenService) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	return s.sign(userID, tokenRefresh, s.refreshSecret, s.refreshTTL)
}

// ValidateAccessToken returns the user ID carried by a valid access token.
func (s *TokenService) ValidateAccessToken(token string) (kernel.UserID, error) {
	return s.validate(token, tokenAccess, s.accessSecret)
}

// ValidateRefreshToken returns the user ID carried by a valid refresh token.
func (s *TokenService) ValidateRefreshToken(token string) (kernel.UserID, error) {
	return s.validate(token, tokenRefresh, s.refreshSecret)
}

func (s *TokenService) sign(userID kernel.UserID, kind tokenKind, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID.String(),
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return token, nil
}

func (s *TokenService) validate(tokenString string, kind tokenKind, secret []byte) (kernel.UserID, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", user.ErrInvalidToken()
	}
	if claims.Kind != kind || claims.UserID == "" {
		return "", user.ErrInvalidToken()
	}

	return kernel.NewUserID(claims.UserID), nil
}
