package service

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/errors"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/model"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/repository"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/util"
)

const bearerPrefix = "Bearer "

// AuthService verifies the single admin credential pair and manages the
// bearer sessions it issues.
type AuthService struct {
	sessionRepo       repository.SessionRepository
	adminUsername     string
	adminPasswordHash string
	sessionTTL        time.Duration
}

func NewAuthService(
	sessionRepo repository.SessionRepository,
	adminUsername, adminPasswordHash string,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		sessionRepo:       sessionRepo,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		sessionTTL:        sessionTTL,
	}
}

// Login checks the submitted credentials and issues a new session on
// success. Username and password comparisons are constant time.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if !util.ConstantTimeEqual(username, s.adminUsername) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if !util.VerifyPassword(password, s.adminPasswordHash) {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	token, err := util.GenerateToken()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate session token").WithCause(err)
	}

	session, err := s.sessionRepo.Create(ctx, model.CreateSessionParams{
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return session, nil
}

// Logout revokes a session. Revoking an already-absent token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return apperrors.Database(err)
	}
	return nil
}

// Authenticate resolves a bearer authorization header to an active session.
// An expired session is deleted on first access and reported as expired;
// there is no background sweep on the default configuration.
func (s *AuthService) Authenticate(ctx context.Context, authorizationHeader string) (*model.Session, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, apperrors.Unauthorized("Missing authentication token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if token == "" {
		return nil, apperrors.Unauthorized("Missing authentication token")
	}

	session, err := s.sessionRepo.Find(ctx, token)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if session == nil {
		return nil, apperrors.InvalidToken("Invalid token")
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.sessionRepo.Delete(ctx, token); err != nil {
			return nil, apperrors.Database(err)
		}
		return nil, apperrors.TokenExpired()
	}

	return session, nil
}
