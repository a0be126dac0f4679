package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mw "prlens/internal/http/middleware"
	"prlens/internal/lib/sl"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teapot() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})
}

func TestLogger_PassesResponseThrough(t *testing.T) {
	h := mw.New(sl.NewDiscardLogger())(teapot())

	req := httptest.NewRequest(http.MethodGet, "/pot", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestMetrics_RecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := mw.Metrics(reg)(teapot())

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/pot", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTeapot, w.Code)
	}

	count, err := testutil.GatherAndCount(reg, "prlens_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{mw.UnmatchedRoute}, handlerLabels(t, reg))
}

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()

	router := chi.NewRouter()
	router.With(mw.Metrics(reg)).Post("/dashboard/history/{id}/reanalyze", teapot().ServeHTTP)

	for id := range 50 {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/dashboard/history/%d/reanalyze", id+1), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTeapot, w.Code)
	}

	count, err := testutil.GatherAndCount(reg, "prlens_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"/dashboard/history/{id}/reanalyze"}, handlerLabels(t, reg))
}

// handlerLabels returns the handler label of every request duration series.
func handlerLabels(t *testing.T, reg *prometheus.Registry) []string {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var labels []string
	for _, mf := range families {
		if mf.GetName() != "prlens_http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "handler" {
					labels = append(labels, lp.GetValue())
				}
			}
		}
	}
	return labels
}
