// Package dashboard derives filtered views and chart series from a loaded list
// of pull requests. Every function is pure: inputs are never modified.
package dashboard

import (
	"cmp"
	"slices"
	"strings"

	"prlens/internal/http/api"
	"prlens/internal/models"
)

const (
	StateAll  = "all"
	dayLayout = "2006-01-02"
)

// States lists the filter buttons in display order.
var States = []string{StateAll, models.StateOpen, models.StateClosed, models.StateMerged}

type Criteria struct {
	Search string
	State  string
}

// Point is one bar, slice or vertex of a chart.
type Point struct {
	Label string
	Count int
}

// Filter keeps pulls whose title contains Search and whose state equals State,
// both compared case-insensitively. An empty or "all" State matches everything.
func Filter(pulls []api.PullRequestSchema, c Criteria) []api.PullRequestSchema {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	state := strings.ToLower(strings.TrimSpace(c.State))
	if state == StateAll {
		state = ""
	}

	out := make([]api.PullRequestSchema, 0, len(pulls))
	for _, pr := range pulls {
		if state != "" && strings.ToLower(pr.State) != state {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(pr.Title), search) {
			continue
		}
		out = append(out, pr)
	}

	return out
}

// ByState always returns open, closed and merged in that order.
func ByState(pulls []api.PullRequestSchema) []Point {
	points := []Point{
		{Label: models.StateOpen},
		{Label: models.StateClosed},
		{Label: models.StateMerged},
	}
	for _, pr := range pulls {
		for i := range points {
			if points[i].Label == pr.State {
				points[i].Count++
			}
		}
	}

	return points
}

// ByAuthor counts pulls per author, most active first and ties by name.
func ByAuthor(pulls []api.PullRequestSchema) []Point {
	counts := make(map[string]int)
	for _, pr := range pulls {
		counts[pr.Author]++
	}

	points := make([]Point, 0, len(counts))
	for author, n := range counts {
		points = append(points, Point{Label: author, Count: n})
	}
	slices.SortFunc(points, func(a, b Point) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})

	return points
}

// ByDay counts pulls per UTC day, oldest day first. A pull is dated by when it
// was opened on GitHub, falling back to when it was stored.
func ByDay(pulls []api.PullRequestSchema) []Point {
	counts := make(map[string]int)
	for _, pr := range pulls {
		at := pr.CreatedAt
		if pr.OpenedAt != nil {
			at = *pr.OpenedAt
		}
		counts[at.UTC().Format(dayLayout)]++
	}

	points := make([]Point, 0, len(counts))
	for day, n := range counts {
		points = append(points, Point{Label: day, Count: n})
	}
	slices.SortFunc(points, func(a, b Point) int {
		return cmp.Compare(a.Label, b.Label)
	})

	return points
}

// MaxCount is the tallest point, used to scale bars.
func MaxCount(points []Point) int {
	var m int
	for _, p := range points {
		m = max(m, p.Count)
	}
	return m
}
