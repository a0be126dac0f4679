package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlens/internal/github"
)

func TestParseRepoURL(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "plain https url", raw: "https://github.com/octocat/Hello-World", wantOwner: "octocat", wantRepo: "Hello-World"},
		{name: "trailing path", raw: "https://github.com/octocat/Hello-World/pulls?q=is%3Aopen", wantOwner: "octocat", wantRepo: "Hello-World"},
		{name: "trailing slash", raw: "https://github.com/vercel/next.js/", wantOwner: "vercel", wantRepo: "next.js"},
		{name: "git suffix", raw: "https://github.com/golang/go.git", wantOwner: "golang", wantRepo: "go"},
		{name: "no scheme", raw: "github.com/go-chi/chi", wantOwner: "go-chi", wantRepo: "chi"},
		{name: "query right after repo", raw: "https://github.com/a/b?tab=readme", wantOwner: "a", wantRepo: "b"},
		{name: "surrounding spaces", raw: "  https://github.com/a/b  ", wantOwner: "a", wantRepo: "b"},
		{name: "owner only", raw: "https://github.com/octocat", wantErr: true},
		{name: "other host", raw: "https://gitlab.com/octocat/Hello-World", wantErr: true},
		{name: "subdomain", raw: "https://www.github.com/octocat/Hello-World", wantOwner: "octocat", wantRepo: "Hello-World"},
		{name: "lookalike host", raw: "https://notgithub.com/a/b", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "not a url", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := github.ParseRepoURL(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, github.ErrInvalidRepoURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOwner, repo.Owner)
			assert.Equal(t, tc.wantRepo, repo.Name)
		})
	}
}

func TestRepository_URL(t *testing.T) {
	repo := github.Repository{Owner: "octocat", Name: "Hello-World"}

	assert.Equal(t, "https://github.com/octocat/Hello-World", repo.URL())
	assert.Equal(t, "octocat/Hello-World", repo.String())
}
