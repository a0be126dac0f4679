package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlens/internal/models"
	repo "prlens/internal/repository"
)

func TestHistoryRepo_CreateListGet(t *testing.T) {
	ctx := context.Background()
	_, historyRepo, _ := newRepos(t)

	entries := []*models.RepoHistory{
		{RepoURL: "https://github.com/octocat/Hello-World", Owner: "octocat", Repo: "Hello-World", TotalPRs: 2},
		{Owner: models.ScopeAll, Repo: models.ScopeAll, TotalPRs: 7},
	}
	for _, h := range entries {
		require.NoError(t, historyRepo.Create(ctx, h))
	}

	history, err := historyRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, models.ScopeAll, history[0].Owner)
	assert.Equal(t, 7, history[0].TotalPRs)
	assert.Equal(t, "Hello-World", history[1].Repo)
	assert.False(t, history[0].CreatedAt.Before(history[1].CreatedAt))

	got, err := historyRepo.GetByID(ctx, history[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat/Hello-World", got.RepoURL)
	assert.Equal(t, 2, got.TotalPRs)
}

func TestHistoryRepo_GetByID_NotFound(t *testing.T) {
	_, historyRepo, _ := newRepos(t)

	got, err := historyRepo.GetByID(context.Background(), 42)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
