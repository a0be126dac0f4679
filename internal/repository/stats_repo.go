package repo

import (
	"context"

	"prlens/internal/lib"
	"prlens/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type StatisticsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewStatisticsRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *StatisticsRepo {
	return &StatisticsRepo{
		db:     db,
		getter: c,
	}
}

func (r *StatisticsRepo) GetPrStats(ctx context.Context, scope models.RepoScope) (*models.PrStatistics, error) {
	const op = "statistics_repo.GetPrStats"

	where, args := scopeFilter(scope)
	query := r.db.Rebind(`
		SELECT
		COUNT(*) AS pr_count,
		COUNT(CASE WHEN state = 'open' THEN 1 END) AS open_pr_count,
		COUNT(CASE WHEN state = 'closed' THEN 1 END) AS closed_pr_count,
		COUNT(CASE WHEN state = 'merged' THEN 1 END) AS merged_pr_count
		FROM pull_requests` + where)

	var res models.PrStatistics
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &res, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &res, nil
}

// GetTopAuthors returns at most limit authors ordered by PR count, ties by name.
func (r *StatisticsRepo) GetTopAuthors(ctx context.Context, scope models.RepoScope, limit int) ([]*models.AuthorStatistics, error) {
	const op = "statistics_repo.GetTopAuthors"

	where, args := scopeFilter(scope)
	query := r.db.Rebind(`
		SELECT author, COUNT(*) AS pr_count
		FROM pull_requests` + where + `
		GROUP BY author
		ORDER BY pr_count DESC, author ASC
		LIMIT ?
	`)
	args = append(args, limit)

	stats := []*models.AuthorStatistics{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &stats, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return stats, nil
}
