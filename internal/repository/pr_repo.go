package repo

import (
	"context"
	"time"

	"prlens/internal/lib"
	"prlens/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type PullRequestRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
	now    func() time.Time
}

func NewPullRequestRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *PullRequestRepo {
	return &PullRequestRepo{
		db:     db,
		getter: c,
		now:    time.Now,
	}
}

// InsertIfAbsent stores pr unless a row with the same url already exists.
// Existing rows are never updated. Reports whether a row was inserted.
func (r *PullRequestRepo) InsertIfAbsent(ctx context.Context, pr *models.PullRequest) (bool, error) {
	const op = "pull_request_repo.InsertIfAbsent"

	query := r.db.Rebind(`
		INSERT INTO pull_requests (url, title, state, author, owner, repo, opened_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (url) DO NOTHING
	`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		pr.URL,
		pr.Title,
		pr.State,
		pr.Author,
		pr.Owner,
		pr.Repo,
		pr.OpenedAt,
		r.now().UTC(),
	)
	if err != nil {
		return false, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return false, lib.Err(op, err)
	}

	return rowsAffected > 0, nil
}

// List returns pull requests in scope, newest first.
func (r *PullRequestRepo) List(ctx context.Context, scope models.RepoScope) ([]*models.PullRequest, error) {
	const op = "pull_request_repo.List"

	where, args := scopeFilter(scope)
	query := r.db.Rebind(`
		SELECT id, url, title, state, author, owner, repo, opened_at, created_at
		FROM pull_requests` + where + `
		ORDER BY created_at DESC, id DESC
	`)

	prs := []*models.PullRequest{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &prs, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return prs, nil
}
