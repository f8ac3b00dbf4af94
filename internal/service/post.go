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

type PostService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create validates and stores a new post. Posts are immutable once created.
func (s *PostService) Create(ctx context.Context, title, body string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, apperrors.ValidationError("Title and body are required")
	}

	id, err := util.GeneratePostID()
	if err != nil {
		return nil, apperrors.Internal("Failed to generate post id").WithCause(err)
	}

	post, err := s.postRepo.Create(ctx, model.CreatePostParams{
		ID:        id,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return posts, nil
}

// Delete removes a post by id, reporting NotFound when no row existed.
func (s *PostService) Delete(ctx context.Context, id string) error {
	removed, err := s.postRepo.Delete(ctx, id)
	if err != nil {
		return apperrors.Database(err)
	}
	if !removed {
		return apperrors.NotFound("Post")
	}
	return nil
}
