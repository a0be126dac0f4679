// Package router assembles the HTTP surface: JSON endpoints, pages, health and metrics.
package router

import (
	"log/slog"
	"net/http"

	"prlens/internal/http/handlers"
	historyh "prlens/internal/http/handlers/history"
	prh "prlens/internal/http/handlers/pr"
	statsh "prlens/internal/http/handlers/stats"
	mw "prlens/internal/http/middleware"
	"prlens/internal/http/web"
	"prlens/internal/service/pr"
	"prlens/internal/service/stats"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	PullRequests *pr.PullRequestService
	Stats        *stats.StatsService
	// Registry collects HTTP metrics and is exposed on MetricsPath.
	// A nil Registry disables both.
	Registry    *prometheus.Registry
	MetricsPath string
}

func New(log *slog.Logger, d Deps) (*chi.Mux, error) {
	prHandler := prh.NewPrHandler(log, d.PullRequests)
	statsHandler := statsh.NewStatsHandler(log, d.Stats)
	historyHandler := historyh.NewHistoryHandler(log, d.Stats)

	pages, err := web.New(log, d.PullRequests, d.Stats)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Group(func(r chi.Router) {
		// labelled by route pattern, so it runs after routing
		if d.Registry != nil {
			r.Use(mw.Metrics(d.Registry))
		}

		r.Get("/health", handlers.Healthcheck())
		if d.Registry != nil && d.MetricsPath != "" {
			r.Handle(d.MetricsPath, promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
		}

		r.Post("/pr/fetch", prHandler.Fetch)
		r.Get("/pr/list", prHandler.List)
		r.Get("/pr/analyze", statsHandler.Analyze)
		r.Get("/history", historyHandler.List)

		pages.Routes(r)
	})

	return router, nil
}
