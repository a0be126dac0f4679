package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prlens/internal/dashboard"
	"prlens/internal/http/api"
	"prlens/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 15, 0, 0, 0, time.UTC)
}

func samplePulls() []api.PullRequestSchema {
	opened := day(1)
	return []api.PullRequestSchema{
		{ID: 1, Title: "Fix login bug", State: models.StateOpen, Author: "alice", CreatedAt: day(3), OpenedAt: &opened},
		{ID: 2, Title: "Add README", State: models.StateClosed, Author: "bob", CreatedAt: day(3)},
		{ID: 3, Title: "Refactor LOGIN flow", State: models.StateMerged, Author: "alice", CreatedAt: day(4)},
		{ID: 4, Title: "Bump deps", State: "OPEN", Author: "carol", CreatedAt: day(4)},
	}
}

func ids(pulls []api.PullRequestSchema) []int64 {
	out := make([]int64, 0, len(pulls))
	for _, pr := range pulls {
		out = append(out, pr.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		name     string
		criteria dashboard.Criteria
		want     []int64
	}{
		{name: "no criteria", criteria: dashboard.Criteria{}, want: []int64{1, 2, 3, 4}},
		{name: "all state", criteria: dashboard.Criteria{State: "all"}, want: []int64{1, 2, 3, 4}},
		{name: "search ignores case", criteria: dashboard.Criteria{Search: "login"}, want: []int64{1, 3}},
		{name: "search is trimmed", criteria: dashboard.Criteria{Search: "  readme "}, want: []int64{2}},
		{name: "state ignores case", criteria: dashboard.Criteria{State: "Open"}, want: []int64{1, 4}},
		{name: "state is exact", criteria: dashboard.Criteria{State: "clo"}, want: []int64{}},
		{name: "search and state", criteria: dashboard.Criteria{Search: "LOGIN", State: "merged"}, want: []int64{3}},
		{name: "nothing matches", criteria: dashboard.Criteria{Search: "zzz"}, want: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(dashboard.Filter(samplePulls(), tc.criteria)))
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pulls := samplePulls()
	before := append([]api.PullRequestSchema(nil), pulls...)

	filtered := dashboard.Filter(pulls, dashboard.Criteria{State: "closed"})
	require.Len(t, filtered, 1)
	filtered[0].Title = "changed"

	assert.Equal(t, before, pulls)
}

func TestByState(t *testing.T) {
	got := dashboard.ByState(samplePulls())

	assert.Equal(t, []dashboard.Point{
		{Label: models.StateOpen, Count: 1},
		{Label: models.StateClosed, Count: 1},
		{Label: models.StateMerged, Count: 1},
	}, got)

	empty := dashboard.ByState(nil)
	assert.Len(t, empty, 3)
	assert.Zero(t, dashboard.MaxCount(empty))
}

func TestByAuthor(t *testing.T) {
	got := dashboard.ByAuthor(samplePulls())

	assert.Equal(t, []dashboard.Point{
		{Label: "alice", Count: 2},
		{Label: "bob", Count: 1},
		{Label: "carol", Count: 1},
	}, got)
	assert.Equal(t, 2, dashboard.MaxCount(got))
}

func TestByDay(t *testing.T) {
	got := dashboard.ByDay(samplePulls())

	assert.Equal(t, []dashboard.Point{
		{Label: "2025-03-01", Count: 1},
		{Label: "2025-03-03", Count: 1},
		{Label: "2025-03-04", Count: 2},
	}, got)
}

func TestSummarize(t *testing.T) {
	summary, err := dashboard.Summarize(dashboard.ByDay(samplePulls()))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Days)
	assert.InDelta(t, 4.0/3.0, summary.Mean, 1e-9)
	assert.Equal(t, 1.0, summary.Median)
	assert.Equal(t, 2.0, summary.Max)

	empty, err := dashboard.Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, dashboard.ActivitySummary{}, empty)
}
