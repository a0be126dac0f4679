package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"prlens/internal/lib"
	"prlens/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type HistoryRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
	now    func() time.Time
}

func NewHistoryRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *HistoryRepo {
	return &HistoryRepo{
		db:     db,
		getter: c,
		now:    time.Now,
	}
}

// Create appends a snapshot. History rows are never updated or deleted.
func (r *HistoryRepo) Create(ctx context.Context, h *models.RepoHistory) error {
	const op = "history_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO repo_history (repo_url, owner, repo, total_prs, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		h.RepoURL,
		h.Owner,
		h.Repo,
		h.TotalPRs,
		r.now().UTC(),
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *HistoryRepo) List(ctx context.Context) ([]*models.RepoHistory, error) {
	const op = "history_repo.List"

	query := `
		SELECT id, repo_url, owner, repo, total_prs, created_at
		FROM repo_history
		ORDER BY created_at DESC, id DESC
	`

	history := []*models.RepoHistory{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &history, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return history, nil
}

func (r *HistoryRepo) GetByID(ctx context.Context, id int64) (*models.RepoHistory, error) {
	const op = "history_repo.GetByID"

	query := r.db.Rebind(`
		SELECT id, repo_url, owner, repo, total_prs, created_at
		FROM repo_history
		WHERE id = ?
	`)

	var h models.RepoHistory
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &h, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &h, nil
}
