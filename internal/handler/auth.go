package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/audit"
	apperrors "github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/errors"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/middleware"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	// A malformed body is treated the same as an empty one; the field
	// checks below produce the 400.
	_ = json.NewDecoder(r.Body).Decode(&req)

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeError(w, apperrors.ValidationError("Username and password are required"))
		return
	}

	session, err := h.authService.Login(r.Context(), username, req.Password)
	if err != nil {
		if apperrors.GetCode(err) == apperrors.ErrCodeUnauthorized {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure})
		} else {
			log.Error().Err(err).Msg("login failed")
		}
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess})
	writeJSON(w, http.StatusOK, map[string]any{
		"token":     session.Token,
		"expiresAt": session.ExpiresAt,
		"username":  username,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		writeError(w, apperrors.Unauthorized("Missing authentication token"))
		return
	}

	if err := h.authService.Logout(r.Context(), session.Token); err != nil {
		log.Error().Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLogout})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
