package userauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/jobtrack/tracking/user"
	"github.com/Abraxas-365/jobtrack/tracking/user/usersrv"
)

type AuthHandlers struct {
	service *usersrv.Service
}

func NewAuthHandlers(service *usersrv.Service) *AuthHandlers {
	return &AuthHandlers{service: service}
}

func (h *AuthHandlers) RegisterRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
}

// Register creates an account.
// POST /api/auth/register
func (h *AuthHandlers) Register(c *fiber.Ctx) error {
	var req user.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrMissingFields("name", "email", "password")
	}

	u, token, err := h.service.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user.RegisterResponse{
		User:  user.ToResponse(u),
		Token: token,
	})
}

// Login exchanges credentials for a token pair.
// POST /api/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrMissingFields("email", "password")
	}

	access, refresh, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(user.LoginResponse{Token: access, RefreshToken: refresh})
}

// Refresh exchanges a refresh token for a new access token.
// POST /api/auth/refresh
func (h *AuthHandlers) Refresh(c *fiber.Ctx) error {
	var req user.RefreshRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return user.ErrMissingFields("refreshToken")
	}

	access, err := h.service.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(user.RefreshResponse{Token: access})
}

// ForgotPassword issues a password reset token.
// POST /api/auth/forgot-password
//
// The token is returned in the response until outbound email exists.
func (h *AuthHandlers) ForgotPassword(c *fiber.Ctx) error {
	var req user.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrMissingFields("email")
	}

	token, err := h.service.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "Password reset token generated",
		"resetToken": token,
	})
}

// ResetPassword consumes a reset token and sets a new password.
// POST /api/auth/reset-password
func (h *AuthHandlers) ResetPassword(c *fiber.Ctx) error {
	var req user.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrMissingFields("token", "newPassword")
	}

	if err := h.service.ResetPassword(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Password has been reset successfully"})
}
