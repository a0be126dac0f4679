package repo_test

import (
	"path/filepath"
	"testing"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	repo "prlens/internal/repository"
)

// newTestDB returns a migrated SQLite database living in a temp dir.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prlens.db")
	require.NoError(t, repo.Migrate(repo.DriverSQLite, path))

	db, err := sqlx.Connect(repo.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func newRepos(t *testing.T) (*repo.PullRequestRepo, *repo.HistoryRepo, *repo.StatisticsRepo) {
	db := newTestDB(t)
	return repo.NewPullRequestRepo(db, trmsqlx.DefaultCtxGetter),
		repo.NewHistoryRepo(db, trmsqlx.DefaultCtxGetter),
		repo.NewStatisticsRepo(db, trmsqlx.DefaultCtxGetter)
}
