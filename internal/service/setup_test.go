package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrooklynLovesZelda/bybrooklyn.dev/internal/database"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.InitSchema(context.Background()))
	t.Cleanup(func() { db.Close() })

	return db
}
