package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRepo builds statements without a server and records the SQL of every query.
func dryRepo(t *testing.T) (*SubmissionRepository, *[]string) {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=pti dbname=pti sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var stmts []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		stmts = append(stmts, tx.Statement.SQL.String())
	}))
	return NewSubmissionRepository(db), &stmts
}

func TestCountSinceUsesActivityColumn(t *testing.T) {
	repo, stmts := dryRepo(t)
	_, err := repo.CountSince(context.Background(), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, *stmts, 1)
	assert.Contains(t, (*stmts)[0], "updated_at >= $1")
	assert.NotContains(t, (*stmts)[0], "created_at")
}

func TestRecentOrdersByActivityColumn(t *testing.T) {
	repo, stmts := dryRepo(t)
	_, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)

	require.Len(t, *stmts, 1)
	assert.Contains(t, (*stmts)[0], `ORDER BY "updated_at" DESC`)
	assert.Contains(t, (*stmts)[0], "LIMIT")
}

func TestGetAndAssetsQueries(t *testing.T) {
	repo, stmts := dryRepo(t)
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	_, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	_, err = repo.Assets(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, *stmts, 2)
	assert.Contains(t, (*stmts)[0], "id = $1")
	assert.Contains(t, (*stmts)[1], "submission_id = $1")
	assert.Contains(t, (*stmts)[1], `ORDER BY "created_at"`)
}
