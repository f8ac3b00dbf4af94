package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/database"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/middleware"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/repository"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/service"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/util"
)

const (
	testUsername = "admin"
	testPassword = "correct"
)

// newTestRouter wires the API routes the way the server binary does,
// backed by an in-memory database. staticDir may be empty when a test
// does not exercise static serving.
func newTestRouter(t *testing.T, staticDir string) chi.Router {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema(context.Background()))

	sessionRepo := repository.NewSessionRepository(db.DB)
	postRepo := repository.NewPostRepository(db.DB)

	authService := service.NewAuthService(
		sessionRepo, testUsername, util.HashPassword(testPassword), 12*time.Hour,
	)
	postService := service.NewPostService(postRepo)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	authHandler := NewAuthHandler(authService)
	postHandler := NewPostHandler(postService)

	r := chi.NewRouter()
	r.Use(middleware.SecurityHeaders)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Get("/posts", postHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Handler)
			r.Post("/logout", authHandler.Logout)
			r.Post("/posts", postHandler.Create)
			r.Delete("/posts/{id}", postHandler.Delete)
		})
	})

	if staticDir != "" {
		r.Get("/*", NewStaticHandler(staticDir).ServeHTTP)
	}

	return r
}

func doJSON(t *testing.T, r chi.Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, r chi.Router) string {
	t.Helper()

	rec := doJSON(t, r, "POST", "/api/login", "", map[string]string{
		"username": testUsername,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
