package usersrv

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/user"
)

// fakeIssuer implements user.TokenIssuer with transparent tokens.
type fakeIssuer struct{}

func (fakeIssuer) GenerateAccessToken(userID kernel.UserID) (string, error) {
	return "access:" + userID.String(), nil
}

func (fakeIssuer) GenerateRefreshToken(userID kernel.UserID) (string, error) {
	return "refresh:" + userID.String(), nil
}

func (fakeIssuer) ValidateRefreshToken(token string) (kernel.UserID, error) {
	const prefix = "refresh:"
	if !strings.HasPrefix(token, prefix) {
		return "", user.ErrInvalidToken()
	}
	return kernel.NewUserID(strings.TrimPrefix(token, prefix)), nil
}

// memoryRepo is an in-memory user.Repository for tests.
type memoryRepo struct {
	byID    map[kernel.UserID]*user.User
	byEmail map[kernel.Email]*user.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		byID:    make(map[kernel.UserID]*user.User),
		byEmail: make(map[kernel.Email]*user.User),
	}
}

func (r *memoryRepo) Create(ctx context.Context, u *user.User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return user.ErrEmailExists()
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, user.ErrNotFound()
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepo) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound()
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepo) UpdatePassword(ctx context.Context, id kernel.UserID, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return user.ErrNotFound()
	}
	u.PasswordHash = hash
	return nil
}

// plainHasher avoids bcrypt's cost in unit tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hash:"+password {
		return user.ErrInvalidCredentials()
	}
	return nil
}

// memoryTokenStore is an in-memory user.ResetTokenStore for tests.
type memoryTokenStore struct {
	tokens map[string]kernel.UserID
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]kernel.UserID)}
}

func (s *memoryTokenStore) Save(ctx context.Context, token string, userID kernel.UserID, ttl time.Duration) error {
	s.tokens[token] = userID
	return nil
}

func (s *memoryTokenStore) Consume(ctx context.Context, token string) (kernel.UserID, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return "", user.ErrInvalidResetToken()
	}
	delete(s.tokens, token)
	return userID, nil
}

func newTestService() (*Service, *memoryRepo) {
	repo := newMemoryRepo()
	svc := NewService(repo, plainHasher{}, fakeIssuer{}, newMemoryTokenStore(), time.Hour)
	return svc, repo
}

func register(t *testing.T, svc *Service, email string) *user.User {
	t.Helper()
	u, _, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return u
}

func assertCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	e, ok := err.(*errx.Error)
	if !ok {
		t.Fatalf("expected *errx.Error with code %s, got %v", code, err)
	}
	if e.Code != code {
		t.Fatalf("error code = %s, want %s", e.Code, code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	access, refresh, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" || refresh == "" {
		t.Error("expected a token pair")
	}
}

func TestRegisterValidatesFields(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Register(context.Background(), user.RegisterRequest{Email: "a@example.com"})
	assertCode(t, err, user.ErrMissingFieldsCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	_, _, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Other",
		Email:    "A@Example.com", // email is normalized before storage
		Password: "pw",
	})
	assertCode(t, err, user.ErrEmailExistsCode)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	_, _, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "a@example.com",
		Password: "wrong",
	})
	assertCode(t, err, user.ErrInvalidCredentialsCode)
}

func TestLoginUnknownUserLooksLikeBadCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assertCode(t, err, user.ErrInvalidCredentialsCode)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	_, refresh, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, err := svc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" {
		t.Error("expected a new access token")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService()
	u := register(t, svc, "a@example.com")

	access := "access:" + u.ID.String()
	if _, err := svc.Refresh(context.Background(), access); err == nil {
		t.Fatal("access token accepted by refresh")
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	token, err := svc.ForgotPassword(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if token == "" {
		t.Fatal("expected a reset token")
	}

	if err := svc.ResetPassword(context.Background(), token, "newpass456"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	// Old password no longer works, new one does.
	_, _, err = svc.Login(context.Background(), user.LoginRequest{Email: "a@example.com", Password: "secret123"})
	assertCode(t, err, user.ErrInvalidCredentialsCode)

	if _, _, err := svc.Login(context.Background(), user.LoginRequest{Email: "a@example.com", Password: "newpass456"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestResetTokenIsSingleUse(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "a@example.com")

	token, err := svc.ForgotPassword(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	if err := svc.ResetPassword(context.Background(), token, "first"); err != nil {
		t.Fatalf("first reset: %v", err)
	}

	err = svc.ResetPassword(context.Background(), token, "second")
	assertCode(t, err, user.ErrInvalidResetTokenCode)
}

func TestForgotPasswordUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assertCode(t, err, user.ErrNotFoundCode)
}
