// Package auth implements the static-credential gate in front of the ledger
// API. One configured owner credential, bearer tokens held in memory for the
// process lifetime. It has no bearing on ledger correctness.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User identifies the authenticated operator.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ErrInvalidCredentials indicates login failure.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Service validates the configured credential and tracks issued tokens.
// An empty password hash disables the gate entirely.
type Service struct {
	email        string
	passwordHash string

	mu       sync.Mutex
	sessions map[string]User
}

// NewService builds the gate from the configured credential pair.
func NewService(email, passwordHash string) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		sessions:     make(map[string]User),
	}
}

// Enabled reports whether a credential is configured.
func (s *Service) Enabled() bool {
	return s.passwordHash != ""
}

// Authenticate checks the credential and issues a bearer token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, User, error) {
	if !s.Enabled() {
		return "", User{}, ErrInvalidCredentials
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.email {
		return "", User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	user := User{Name: "Admin", Email: s.email, Role: "Admin"}
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()
	return token, user, nil
}

// UserForToken resolves a previously issued token.
func (s *Service) UserForToken(token string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.sessions[token]
	return user, ok
}

// Revoke forgets a token. Unknown tokens are ignored.
func (s *Service) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// HashPassword produces a bcrypt hash suitable for AUTH_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type contextKey struct{}

// ContextWithUser attaches the operator to the request context.
func ContextWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// UserFromContext returns the operator attached by the middleware.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(contextKey{}).(User)
	return user, ok
}
