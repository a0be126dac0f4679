package github

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidRepoURL = errors.New("invalid github repository url")

var repoURLPattern = regexp.MustCompile(`(?:^|[/.@])github\.com/([^/?#]+)/([^/?#]+)`)

// Repository identifies a GitHub repository by owner and name.
type Repository struct {
	Owner string
	Name  string
}

// URL returns the canonical web URL of the repository.
func (r Repository) URL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name
}

func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepoURL extracts owner and repository name from anything containing
// github.com/{owner}/{repo}. The host must start the string or follow "/", "." or "@",
// so lookalike hosts are rejected. Trailing path segments and a ".git" suffix are ignored.
func ParseRepoURL(raw string) (Repository, error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Repository{}, ErrInvalidRepoURL
	}

	name := strings.TrimSuffix(m[2], ".git")
	if name == "" {
		return Repository{}, ErrInvalidRepoURL
	}

	return Repository{Owner: m[1], Name: name}, nil
}
