package repository

import (
	"context"
	"time"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/database"
	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/model"
)

type SessionRepository interface {
	Find(ctx context.Context, token string) (*model.Session, error)
	Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error)
	// Delete is idempotent; removing an absent token is not an error.
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepo struct {
	db database.DBTX
}

func NewSessionRepository(db database.DBTX) SessionRepository {
	return &sessionRepo{db: db}
}

type sessionRow struct {
	Token     string `db:"token"`
	ExpiresAt string `db:"expires_at"`
}

func (row *sessionRow) toModel() (*model.Session, error) {
	expiresAt, err := parseTime(row.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &model.Session{
		Token:     row.Token,
		ExpiresAt: expiresAt,
	}, nil
}

func (r *sessionRepo) Find(ctx context.Context, token string) (*model.Session, error) {
	var row sessionRow
	err := r.db.GetContext(ctx, &row, `
		SELECT token, expires_at FROM sessions WHERE token = ?
	`, token)
	found, err := handleNotFound(&row, err)
	if err != nil || found == nil {
		return nil, err
	}
	return found.toModel()
}

func (r *sessionRepo) Create(ctx context.Context, params model.CreateSessionParams) (*model.Session, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (token, expires_at)
		VALUES (?, ?)
	`, params.Token, formatTime(params.ExpiresAt))
	if err != nil {
		return nil, err
	}
	return &model.Session{
		Token:     params.Token,
		ExpiresAt: params.ExpiresAt.UTC(),
	}, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM sessions WHERE expires_at < ?
	`, formatTime(now))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
