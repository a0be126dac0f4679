package models

import "time"

// ScopeAll marks a history entry taken over every stored repository.
const ScopeAll = "*"

type RepoHistory struct {
	ID        int64     `db:"id"`
	RepoURL   string    `db:"repo_url"`
	Owner     string    `db:"owner"`
	Repo      string    `db:"repo"`
	TotalPRs  int       `db:"total_prs"`
	CreatedAt time.Time `db:"created_at"`
}

// RepoScope narrows queries to one repository. The zero value means all of them.
type RepoScope struct {
	Owner string
	Repo  string
}

func (s RepoScope) IsAll() bool {
	return s.Owner == "" && s.Repo == ""
}
