package pr

import (
	"context"
	"errors"

	"prlens/internal/github"
	"prlens/internal/http/api"
	"prlens/internal/models"
	"prlens/internal/service"
)

const (
	SampleSize  = 5
	SyncMessage = "PRs fetched and saved successfully"
)

const (
	reasonInvalidURL = "invalid_url"
	reasonUpstream   = "upstream"
	reasonMalformed  = "malformed"
	reasonStorage    = "storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PullsFetcher --output=../mocks --outpkg=mocks
type PullsFetcher interface {
	ListPulls(ctx context.Context, repo github.Repository) ([]models.RemotePull, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PrStore --output=../mocks --outpkg=mocks
type PrStore interface {
	InsertIfAbsent(ctx context.Context, pr *models.PullRequest) (bool, error)
	List(ctx context.Context, scope models.RepoScope) ([]*models.PullRequest, error)
}

type SyncObserver interface {
	SyncSucceeded(fetched, created int)
	SyncFailed(reason string)
}

type PullRequestService struct {
	fetcher  PullsFetcher
	prStore  PrStore
	observer SyncObserver
	trm      service.TransactionManager
}

func NewPullRequestService(
	trm service.TransactionManager,
	fetcher PullsFetcher,
	prStore PrStore,
	observer SyncObserver,
) *PullRequestService {
	return &PullRequestService{
		trm:      trm,
		fetcher:  fetcher,
		prStore:  prStore,
		observer: observer,
	}
}

// Sync fetches the current pulls of repoURL and stores the ones not seen before.
// Rows already stored are left as they are, so later state changes upstream are not reflected.
func (s *PullRequestService) Sync(ctx context.Context, repoURL string) (*api.FetchResponse, error) {
	repo, err := github.ParseRepoURL(repoURL)
	if err != nil {
		s.observer.SyncFailed(reasonInvalidURL)
		return nil, err
	}

	pulls, err := s.fetcher.ListPulls(ctx, repo)
	if err != nil {
		if errors.Is(err, github.ErrMalformedResponse) {
			s.observer.SyncFailed(reasonMalformed)
		} else {
			s.observer.SyncFailed(reasonUpstream)
		}
		return nil, err
	}

	var created int
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		created = 0
		for _, p := range pulls {
			inserted, err := s.prStore.InsertIfAbsent(ctx, &models.PullRequest{
				URL:      p.URL,
				Title:    p.Title,
				State:    p.State,
				Author:   p.Author,
				Owner:    repo.Owner,
				Repo:     repo.Name,
				OpenedAt: p.OpenedAt,
			})
			if err != nil {
				return err
			}
			if inserted {
				created++
			}
		}
		return nil
	})
	if err != nil {
		s.observer.SyncFailed(reasonStorage)
		return nil, err
	}

	s.observer.SyncSucceeded(len(pulls), created)

	resp := &api.FetchResponse{
		Message:    SyncMessage,
		TotalPRs:   len(pulls),
		Created:    created,
		SampleData: make([]api.PullSample, 0, min(len(pulls), SampleSize)),
	}
	for _, p := range pulls[:min(len(pulls), SampleSize)] {
		resp.SampleData = append(resp.SampleData, api.PullSample{
			Title:  p.Title,
			URL:    p.URL,
			State:  p.State,
			Author: p.Author,
		})
	}

	return resp, nil
}

// List returns stored pulls, newest first. An empty repoURL lists every repository.
func (s *PullRequestService) List(ctx context.Context, repoURL string) (*api.ListResponse, error) {
	scope, err := service.ScopeFromURL(repoURL)
	if err != nil {
		return nil, err
	}

	prs, err := s.prStore.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	resp := &api.ListResponse{
		Pulls: make([]api.PullRequestSchema, 0, len(prs)),
	}
	for _, pr := range prs {
		resp.Pulls = append(resp.Pulls, toPullRequestSchema(pr))
	}

	return resp, nil
}

func toPullRequestSchema(pr *models.PullRequest) api.PullRequestSchema {
	return api.PullRequestSchema{
		ID:        pr.ID,
		Title:     pr.Title,
		URL:       pr.URL,
		State:     pr.State,
		Author:    pr.Author,
		Owner:     pr.Owner,
		Repo:      pr.Repo,
		OpenedAt:  pr.OpenedAt,
		CreatedAt: pr.CreatedAt,
	}
}
