package models

import "time"

const (
	StateOpen   = "open"
	StateClosed = "closed"
	StateMerged = "merged"

	UnknownAuthor = "Unknown"
)

type PullRequest struct {
	ID        int64      `db:"id"`
	URL       string     `db:"url"`
	Title     string     `db:"title"`
	State     string     `db:"state"`
	Author    string     `db:"author"`
	Owner     string     `db:"owner"`
	Repo      string     `db:"repo"`
	OpenedAt  *time.Time `db:"opened_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// RemotePull is a pull request as reported by GitHub, before it is stored.
type RemotePull struct {
	URL      string
	Title    string
	State    string
	Author   string
	OpenedAt *time.Time
}
