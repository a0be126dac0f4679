// Package metrics holds the Prometheus collectors for sync and analysis outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	syncRunsMetricName       = "prlens_sync_runs_total"
	pullsFetchedMetricName   = "prlens_pulls_fetched_total"
	pullsCreatedMetricName   = "prlens_pulls_created_total"
	analysisRunsMetricName   = "prlens_analysis_runs_total"
	historyEntriesMetricName = "prlens_history_entries_total"
)

const ResultSuccess = "success"

type Collector struct {
	syncRuns       *prometheus.CounterVec
	pullsFetched   prometheus.Counter
	pullsCreated   prometheus.Counter
	analysisRuns   prometheus.Counter
	historyEntries prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		syncRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: syncRunsMetricName,
			Help: "Repository syncs by result.",
		}, []string{"result"}),
		pullsFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: pullsFetchedMetricName,
			Help: "Pull requests received from GitHub.",
		}),
		pullsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: pullsCreatedMetricName,
			Help: "Pull requests stored for the first time.",
		}),
		analysisRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: analysisRunsMetricName,
			Help: "Completed analyses.",
		}),
		historyEntries: factory.NewCounter(prometheus.CounterOpts{
			Name: historyEntriesMetricName,
			Help: "History snapshots written by analyses.",
		}),
	}
}

func (c *Collector) SyncSucceeded(fetched, created int) {
	c.syncRuns.WithLabelValues(ResultSuccess).Inc()
	c.pullsFetched.Add(float64(fetched))
	c.pullsCreated.Add(float64(created))
}

// SyncFailed counts a failed sync under reason, e.g. "upstream" or "storage".
func (c *Collector) SyncFailed(reason string) {
	c.syncRuns.WithLabelValues(reason).Inc()
}

func (c *Collector) AnalysisCompleted(recorded bool) {
	c.analysisRuns.Inc()
	if recorded {
		c.historyEntries.Inc()
	}
}
