package audit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventLoginSuccess EventType = "login_success"
	EventLoginFailure EventType = "login_failure"
	EventLogout       EventType = "logout"
	EventAuthFailure  EventType = "auth_failure"
	EventPostCreate   EventType = "post_create"
	EventPostDelete   EventType = "post_delete"
	EventSessionSweep EventType = "session_sweep"
)

type Event struct {
	Type      EventType
	PostID    string
	IP        string
	UserAgent string
}

func Log(event Event) {
	logger := log.With().
		Str("audit", "security").
		Str("event_type", string(event.Type)).
		Time("timestamp", time.Now()).
		Logger()

	if event.PostID != "" {
		logger = logger.With().Str("post_id", event.PostID).Logger()
	}
	if event.IP != "" {
		logger = logger.With().Str("ip", event.IP).Logger()
	}
	if event.UserAgent != "" {
		logger = logger.With().Str("user_agent", event.UserAgent).Logger()
	}

	logger.Info().Msg("security audit event")
}

func LogFromRequest(r *http.Request, event Event) {
	event.IP = clientIP(r)
	event.UserAgent = r.UserAgent()
	Log(event)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
