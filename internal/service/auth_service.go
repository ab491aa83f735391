package service

import (
	"context"
	"errors"
	"time"

	"github.com/grancoffee/helpdesk-service/internal/auth"
	"github.com/grancoffee/helpdesk-service/internal/domain"
	"github.com/grancoffee/helpdesk-service/internal/session"
	apperrors "github.com/grancoffee/helpdesk-service/pkg/util"
)

// AuthService coordinates login and logout against the fixed credential
// table, caching the logged-in identity in the session store.
type AuthService struct {
	credentials *auth.CredentialTable
	tokens      *auth.TokenManager
	sessions    session.Store
}

// AuthDependencies bundles collaborators for the auth service.
type AuthDependencies struct {
	Credentials *auth.CredentialTable
	Tokens      *auth.TokenManager
	Sessions    session.Store
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		credentials: deps.Credentials,
		tokens:      deps.Tokens,
		sessions:    deps.Sessions,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login validates credentials, issues a token and caches the session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Identity, string, time.Time, error) {
	identity, err := s.credentials.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Credenciais inválidas. Verifique seu usuário e senha.")
		}
		return nil, "", time.Time{}, err
	}

	token, tokenID, expiresAt, err := s.tokens.GenerateToken(identity)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if err := s.sessions.Put(ctx, session.Session{
		TokenID:   tokenID,
		Identity:  *identity,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, "", time.Time{}, err
	}

	return identity, token, expiresAt, nil
}

// Logout clears the cached session for the token.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.sessions.Delete(ctx, tokenID)
}
