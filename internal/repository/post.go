package repository

import (
	"context"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/database"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/model"
)

type PostRepository interface {
	Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
}

type postRepo struct {
	db database.DBTX
}

func NewPostRepository(db database.DBTX) PostRepository {
	return &postRepo{db: db}
}

// postRow mirrors the posts table, with the timestamp in its stored
// TEXT encoding.
type postRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	CreatedAt string `db:"created_at"`
}

func (row *postRow) toModel() (*model.Post, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &model.Post{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: createdAt,
	}, nil
}

func (r *postRepo) Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`, params.ID, params.Title, params.Body, formatTime(params.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &model.Post{
		ID:        params.ID,
		Title:     params.Title,
		Body:      params.Body,
		CreatedAt: params.CreatedAt.UTC(),
	}, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]model.Post, error) {
	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, title, body, created_at FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(rows))
	for _, row := range rows {
		post, err := row.toModel()
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
