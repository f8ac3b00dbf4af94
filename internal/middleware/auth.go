package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/audit"
	apperrors "github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/errors"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/model"
)

type contextKey string

const SessionContextKey contextKey = "session"

func GetSession(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionContextKey).(*model.Session); ok {
		return session
	}
	return nil
}

// Authenticator resolves an Authorization header value to an active session.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (*model.Session, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.auth.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			switch apperrors.GetCode(err) {
			case apperrors.ErrCodeDatabase, apperrors.ErrCodeInternal:
				log.Error().Err(err).Msg("auth middleware: session lookup failed")
			default:
				log.Warn().Str("path", r.URL.Path).Msg("auth middleware: rejected request")
				audit.LogFromRequest(r, audit.Event{Type: audit.EventAuthFailure})
			}
			writeError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
