package userauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/user"
)

const localsUserID = "user_id"

// Middleware validates the Bearer token and stores the user ID in the
// request context.
func Middleware(tokens *TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return user.ErrInvalidToken().WithMessage("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return user.ErrInvalidToken().WithMessage("Invalid authorization format")
		}

		userID, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(localsUserID).(kernel.UserID)
	return userID, ok
}
