package ports

import (
	"context"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
)

// AuthResult is the credential bundle returned on successful authentication.
type AuthResult struct {
	Token  string
	UserID string
	Name   string
	Role   string
}

// CreateUserInput carries the data needed to register a new user.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// IdentityService manages users, password verification, and bearer tokens.
type IdentityService interface {
	// Authenticate verifies email+password and refreshes last_login.
	// Unknown email and wrong password both yield ErrAuthenticationFailed.
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	// ResolveToken maps a bearer token back to its user.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
}

// TokenCache is an optional lookaside index from bearer token to user id.
// Cache failures are never fatal; the identity store falls back to a scan.
type TokenCache interface {
	Get(ctx context.Context, token string) (string, error)
	Put(ctx context.Context, token, userID string) error
}
