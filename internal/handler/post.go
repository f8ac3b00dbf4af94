package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/audit"
	apperrors "github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/errors"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list posts")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	post, err := h.postService.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		if apperrors.GetCode(err) != apperrors.ErrCodeValidation {
			log.Error().Err(err).Msg("failed to create post")
		}
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventPostCreate, PostID: post.ID})
	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.postService.Delete(r.Context(), id); err != nil {
		if apperrors.GetCode(err) != apperrors.ErrCodeNotFound {
			log.Error().Err(err).Msg("failed to delete post")
		}
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventPostDelete, PostID: id})
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
