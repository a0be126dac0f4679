package service

import (
	"prlens/internal/github"
	"prlens/internal/models"
)

// ScopeFromURL turns an optional repository URL into a query scope.
// An empty URL means every stored repository.
func ScopeFromURL(repoURL string) (models.RepoScope, error) {
	if repoURL == "" {
		return models.RepoScope{}, nil
	}

	repo, err := github.ParseRepoURL(repoURL)
	if err != nil {
		return models.RepoScope{}, err
	}

	return models.RepoScope{Owner: repo.Owner, Repo: repo.Name}, nil
}
