package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
)

// IdentityService implements ports.IdentityService over the shared store.
type IdentityService struct {
	store  *state.Store
	tokens ports.TokenCache
	hasher PasswordHasher
	log    zerolog.Logger
	now    func() time.Time
}

func NewIdentityService(store *state.Store, tokens ports.TokenCache, hasher PasswordHasher, log zerolog.Logger) *IdentityService {
	if tokens == nil {
		tokens = noopTokenCache{}
	}
	return &IdentityService{
		store:  store,
		tokens: tokens,
		hasher: hasher,
		log:    log,
		now:    time.Now,
	}
}

// Authenticate looks up the user by email, verifies the password, and
// refreshes last_login. Unknown email and wrong password return the same
// error so callers cannot enumerate accounts.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var result *ports.AuthResult

	err := s.store.Update(ctx, func(d *state.Data) error {
		for _, u := range d.Users {
			if u.Email == email && s.hasher.Verify(u.PasswordHash, password) {
				u.LastLogin = domain.Timestamp(s.now())
				result = &ports.AuthResult{
					Token:  u.Token,
					UserID: u.ID,
					Name:   u.Name,
					Role:   u.Role,
				}
				return nil
			}
		}
		return domain.ErrAuthenticationFailed
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", result.UserID).Str("role", result.Role).Msg("user authenticated")
	return result, nil
}

// ResolveToken maps a bearer token to its user, consulting the token cache
// before falling back to a scan. Cache failures are logged and ignored.
func (s *IdentityService) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	if userID, err := s.tokens.Get(ctx, token); err == nil && userID != "" {
		var user *domain.User
		s.store.View(func(d *state.Data) {
			if u, ok := d.Users[userID]; ok && u.Token == token {
				clone := *u
				user = &clone
			}
		})
		if user != nil {
			return user, nil
		}
	}

	var user *domain.User
	s.store.View(func(d *state.Data) {
		for _, u := range d.Users {
			if u.Token == token {
				clone := *u
				user = &clone
				return
			}
		}
	})
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.tokens.Put(ctx, token, user.ID); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache token")
	}
	return user, nil
}

// CreateUser registers a new user with a fresh id and bearer token.
// Email uniqueness is intentionally not enforced; duplicate emails resolve
// to whichever matching user also matches the password at login.
func (s *IdentityService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.KnownRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           domain.NewID(input.Role),
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hash,
		CreatedAt:    domain.Timestamp(s.now()),
		Token:        domain.NewToken(),
	}

	err = s.store.Update(ctx, func(d *state.Data) error {
		d.Users[user.ID] = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	clone := *user
	return &clone, nil
}

// noopTokenCache is used when no Redis token cache is configured.
type noopTokenCache struct{}

func (noopTokenCache) Get(context.Context, string) (string, error) { return "", nil }
func (noopTokenCache) Put(context.Context, string, string) error   { return nil }
