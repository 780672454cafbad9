package user

import (
	"net/http"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
)

var userErrors = errx.NewRegistry("USER")

var (
	ErrMissingFieldsCode      = userErrors.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Required fields are missing")
	ErrEmailExistsCode        = userErrors.Register("EMAIL_EXISTS", errx.TypeConflict, http.StatusConflict, "Email already exists")
	ErrNotFoundCode           = userErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	ErrInvalidCredentialsCode = userErrors.Register("INVALID_CREDENTIALS", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid credentials")
	ErrInvalidTokenCode       = userErrors.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	ErrInvalidResetTokenCode  = userErrors.Register("INVALID_RESET_TOKEN", errx.TypeValidation, http.StatusBadRequest, "Invalid or expired reset token")
)

func ErrMissingFields(fields ...string) *errx.Error {
	return userErrors.New(ErrMissingFieldsCode).WithDetail("fields", fields)
}

func ErrEmailExists() *errx.Error {
	return userErrors.New(ErrEmailExistsCode)
}

func ErrNotFound() *errx.Error {
	return userErrors.New(ErrNotFoundCode)
}

func ErrInvalidCredentials() *errx.Error {
	return userErrors.New(ErrInvalidCredentialsCode)
}

func ErrInvalidToken() *errx.Error {
	return userErrors.New(ErrInvalidTokenCode)
}

func ErrInvalidResetToken() *errx.Error {
	return userErrors.New(ErrInvalidResetTokenCode)
}
