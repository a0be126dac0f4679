package stats

import (
	"context"

	"prlens/internal/github"
	"prlens/internal/http/api"
	"prlens/internal/models"
	"prlens/internal/service"
)

const TopAuthorsLimit = 5

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatsProvider --output=../mocks --outpkg=mocks
type StatsProvider interface {
	GetPrStats(ctx context.Context, scope models.RepoScope) (*models.PrStatistics, error)
	GetTopAuthors(ctx context.Context, scope models.RepoScope, limit int) ([]*models.AuthorStatistics, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=HistoryStore --output=../mocks --outpkg=mocks
type HistoryStore interface {
	Create(ctx context.Context, h *models.RepoHistory) error
	List(ctx context.Context) ([]*models.RepoHistory, error)
	GetByID(ctx context.Context, id int64) (*models.RepoHistory, error)
}

type AnalysisObserver interface {
	AnalysisCompleted(recorded bool)
}

type StatsService struct {
	statsProvider StatsProvider
	historyStore  HistoryStore
	observer      AnalysisObserver
	trm           service.TransactionManager
}

func NewStatsService(
	trm service.TransactionManager,
	statsProvider StatsProvider,
	historyStore HistoryStore,
	observer AnalysisObserver,
) *StatsService {
	return &StatsService{
		trm:           trm,
		statsProvider: statsProvider,
		historyStore:  historyStore,
		observer:      observer,
	}
}

// Analyze aggregates stored pulls and appends a history snapshot.
// An empty repoURL aggregates every repository and the snapshot is recorded under models.ScopeAll.
// Nothing is recorded while the scope holds no pulls.
func (s *StatsService) Analyze(ctx context.Context, repoURL string) (*api.AnalysisResponse, error) {
	scope, err := service.ScopeFromURL(repoURL)
	if err != nil {
		return nil, err
	}

	resp := &api.AnalysisResponse{
		TopAuthors: []api.AuthorCount{},
	}

	var recorded bool
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		prStats, err := s.statsProvider.GetPrStats(ctx, scope)
		if err != nil {
			return err
		}

		resp.TotalPRs = prStats.PrCount
		resp.OpenPRs = prStats.OpenPrs
		resp.ClosedPRs = prStats.ClosedPrs
		resp.MergedPRs = prStats.MergedPrs

		if prStats.PrCount == 0 {
			return nil
		}

		authors, err := s.statsProvider.GetTopAuthors(ctx, scope, TopAuthorsLimit)
		if err != nil {
			return err
		}
		for _, a := range authors {
			resp.TopAuthors = append(resp.TopAuthors, api.AuthorCount{Author: a.Author, Count: a.Count})
		}

		if err := s.historyStore.Create(ctx, historyEntry(scope, prStats.PrCount)); err != nil {
			return err
		}
		recorded = true

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observer.AnalysisCompleted(recorded)

	return resp, nil
}

func (s *StatsService) History(ctx context.Context) (*api.HistoryResponse, error) {
	history, err := s.historyStore.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &api.HistoryResponse{
		History: make([]api.HistorySchema, 0, len(history)),
	}
	for _, h := range history {
		resp.History = append(resp.History, toHistorySchema(h))
	}

	return resp, nil
}

func (s *StatsService) HistoryEntry(ctx context.Context, id int64) (*api.HistorySchema, error) {
	h, err := s.historyStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toHistorySchema(h)
	return &resp, nil
}

func historyEntry(scope models.RepoScope, total int) *models.RepoHistory {
	if scope.IsAll() {
		return &models.RepoHistory{
			Owner:    models.ScopeAll,
			Repo:     models.ScopeAll,
			TotalPRs: total,
		}
	}

	return &models.RepoHistory{
		RepoURL:  github.Repository{Owner: scope.Owner, Name: scope.Repo}.URL(),
		Owner:    scope.Owner,
		Repo:     scope.Repo,
		TotalPRs: total,
	}
}

func toHistorySchema(h *models.RepoHistory) api.HistorySchema {
	return api.HistorySchema{
		ID:        h.ID,
		RepoURL:   h.RepoURL,
		Owner:     h.Owner,
		Repo:      h.Repo,
		TotalPRs:  h.TotalPRs,
		CreatedAt: h.CreatedAt,
	}
}
