package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
)

// UnmatchedRoute labels requests served without a chi route pattern.
const UnmatchedRoute = "unmatched"

// Metrics records request counts, latencies and response sizes on reg.
// Requests are labelled by chi's route pattern, so it has to run after routing:
// mount it with Group/With rather than on the top-level router.
func Metrics(reg prometheus.Registerer) func(next http.Handler) http.Handler {
	mdlw := httpmetrics.New(httpmetrics.Config{
		Recorder: metrics.NewRecorder(metrics.Config{
			Registry: reg,
			Prefix:   "prlens",
		}),
		GroupedStatus: true,
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			std.Handler(routePattern(r), mdlw, next).ServeHTTP(w, r)
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return UnmatchedRoute
}
