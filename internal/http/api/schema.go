package api

import "time"

type PullRequestSchema struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	State     string     `json:"state"`
	Author    string     `json:"author"`
	Owner     string     `json:"owner"`
	Repo      string     `json:"repo"`
	OpenedAt  *time.Time `json:"openedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PullSample is a freshly fetched pull request echoed back by a sync.
type PullSample struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	State  string `json:"state"`
	Author string `json:"author"`
}

type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

type HistorySchema struct {
	ID        int64     `json:"id"`
	RepoURL   string    `json:"repoUrl"`
	Owner     string    `json:"owner"`
	Repo      string    `json:"repo"`
	TotalPRs  int       `json:"totalPRs"`
	CreatedAt time.Time `json:"createdAt"`
}
