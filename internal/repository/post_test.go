package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/model"
)

func TestPostRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db.DB)
	ctx := context.Background()

	createdAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	post, err := repo.Create(ctx, model.CreatePostParams{
		ID:        "abc123",
		Title:     "Hello",
		Body:      "World",
		CreatedAt: createdAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "World", post.Body)
	assert.True(t, post.CreatedAt.Equal(createdAt))
}

func TestPostRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db.DB)
	ctx := context.Background()

	t.Run("returns empty slice for empty table", func(t *testing.T) {
		posts, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("orders newest first", func(t *testing.T) {
		base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		for i, id := range []string{"first", "second", "third"} {
			_, err := repo.Create(ctx, model.CreatePostParams{
				ID:        id,
				Title:     "Title " + id,
				Body:      "Body " + id,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		posts, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 3)
		assert.Equal(t, "third", posts[0].ID)
		assert.Equal(t, "second", posts[1].ID)
		assert.Equal(t, "first", posts[2].ID)
	})
}

func TestPostRepository_FindAll_SubsecondOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db.DB)
	ctx := context.Background()

	// Sub-second timestamps must still order correctly on the TEXT column.
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := base.Add(123 * time.Nanosecond)
	newer := base.Add(500 * time.Millisecond)

	_, err := repo.Create(ctx, model.CreatePostParams{ID: "newer", Title: "t", Body: "b", CreatedAt: newer})
	require.NoError(t, err)
	_, err = repo.Create(ctx, model.CreatePostParams{ID: "older", Title: "t", Body: "b", CreatedAt: older})
	require.NoError(t, err)

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].ID)
	assert.Equal(t, "older", posts[1].ID)
}

func TestPostRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.CreatePostParams{
		ID:        "doomed",
		Title:     "t",
		Body:      "b",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	t.Run("reports removal of an existing row", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "doomed")
		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("second delete reports nothing removed", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "doomed")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("unknown id reports nothing removed", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "never-existed")
		require.NoError(t, err)
		assert.False(t, removed)
	})
}
