package models

type AuthorStatistics struct {
	Author string `db:"author"`
	Count  int    `db:"pr_count"`
}

type PrStatistics struct {
	PrCount   int `db:"pr_count"`
	OpenPrs   int `db:"open_pr_count"`
	ClosedPrs int `db:"closed_pr_count"`
	MergedPrs int `db:"merged_pr_count"`
}
