// Package web serves the server-rendered pages: the fetch screen, the pull
// request dashboard and the analysis history dashboard.
package web

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"prlens/internal/dashboard"
	"prlens/internal/github"
	"prlens/internal/http/api"
	"prlens/internal/lib/sl"
	repo "prlens/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=pullService --structname=MockPullService --output=./mocks --outpkg=mocks
type pullService interface {
	Sync(ctx context.Context, repoURL string) (*api.FetchResponse, error)
	List(ctx context.Context, repoURL string) (*api.ListResponse, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=historyService --structname=MockHistoryService --output=./mocks --outpkg=mocks
type historyService interface {
	History(ctx context.Context) (*api.HistoryResponse, error)
	HistoryEntry(ctx context.Context, id int64) (*api.HistorySchema, error)
}

type Handler struct {
	log     *slog.Logger
	pulls   pullService
	history historyService
	pages   map[string]*template.Template
}

func New(log *slog.Logger, pulls pullService, history historyService) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:     log,
		pulls:   pulls,
		history: history,
		pages:   pages,
	}, nil
}

// Routes mounts every page on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.FetchPage)
	r.Post("/", h.Fetch)
	r.Get("/pulls", h.Pulls)
	r.Post("/pulls/sync", h.SyncPulls)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/dashboard/history/{id}/reanalyze", h.Reanalyze)
}

type page struct {
	Title  string
	Error  string
	Notice string
}

type fetchPage struct {
	page
	RepoURL string
	Result  *api.FetchResponse
}

type chart struct {
	Name   string
	Points []dashboard.Point
}

type pullsPage struct {
	page
	RepoURL  string
	Criteria dashboard.Criteria
	States   []string
	Total    int
	Pulls    []api.PullRequestSchema
	ByState  chart
	ByAuthor chart
	ByDay    chart
	Activity dashboard.ActivitySummary
}

type dashboardPage struct {
	page
	History []api.HistorySchema
}

type statusPage struct {
	page
	Message string
}

func (h *Handler) FetchPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageFetch, fetchPage{page: page{Title: "Fetch pull requests"}})
}

func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	const op = "web.Fetch"
	log := h.requestLogger(r, op)

	data := fetchPage{
		page:    page{Title: "Fetch pull requests"},
		RepoURL: strings.TrimSpace(r.PostFormValue("repoUrl")),
	}
	if data.RepoURL == "" {
		data.Error = "Please enter a repository URL."
		h.render(w, r, http.StatusBadRequest, pageFetch, data)
		return
	}

	resp, err := h.pulls.Sync(r.Context(), data.RepoURL)
	if err != nil {
		status, msg := syncFailure(err)
		log.Error("sync failed", slog.String("repo_url", data.RepoURL), sl.Err(err))
		data.Error = msg
		h.render(w, r, status, pageFetch, data)
		return
	}

	data.Result = resp
	h.render(w, r, http.StatusOK, pageFetch, data)
}

func (h *Handler) Pulls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.renderPulls(w, r, http.StatusOK, "", dashboard.Criteria{
		Search: q.Get("q"),
		State:  q.Get("state"),
	}, "")
}

// SyncPulls re-fetches a repository from the pulls dashboard and reloads it.
func (h *Handler) SyncPulls(w http.ResponseWriter, r *http.Request) {
	const op = "web.SyncPulls"
	log := h.requestLogger(r, op)

	repoURL := strings.TrimSpace(r.PostFormValue("repoUrl"))
	if repoURL == "" {
		h.renderPulls(w, r, http.StatusBadRequest, repoURL, dashboard.Criteria{}, "Please enter a repository URL.")
		return
	}

	if _, err := h.pulls.Sync(r.Context(), repoURL); err != nil {
		status, msg := syncFailure(err)
		log.Error("sync failed", slog.String("repo_url", repoURL), sl.Err(err))
		h.renderPulls(w, r, status, repoURL, dashboard.Criteria{}, msg)
		return
	}

	http.Redirect(w, r, "/pulls", http.StatusSeeOther)
}

func (h *Handler) renderPulls(w http.ResponseWriter, r *http.Request, status int, repoURL string, c dashboard.Criteria, failure string) {
	const op = "web.Pulls"
	log := h.requestLogger(r, op)

	if c.State == "" {
		c.State = dashboard.StateAll
	}
	data := pullsPage{
		page:     page{Title: "Pull requests", Error: failure},
		RepoURL:  repoURL,
		Criteria: c,
		States:   dashboard.States,
	}

	resp, err := h.pulls.List(r.Context(), "")
	if err != nil {
		log.Error("error while listing pull requests", sl.Err(err))
		data.Error = "Failed to load pull requests."
		h.render(w, r, http.StatusInternalServerError, pagePulls, data)
		return
	}

	days := dashboard.ByDay(resp.Pulls)
	activity, err := dashboard.Summarize(days)
	if err != nil {
		log.Warn("failed to summarize activity", sl.Err(err))
	}

	data.Total = len(resp.Pulls)
	data.Pulls = dashboard.Filter(resp.Pulls, c)
	data.ByState = chart{Name: "By state", Points: dashboard.ByState(resp.Pulls)}
	data.ByAuthor = chart{Name: "By author", Points: dashboard.ByAuthor(resp.Pulls)}
	data.ByDay = chart{Name: "By day", Points: days}
	data.Activity = activity

	h.render(w, r, status, pagePulls, data)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var notice string
	if id := r.URL.Query().Get("reanalyzed"); id != "" {
		notice = "Re-fetched pull requests for entry #" + id + "."
	}
	h.renderDashboard(w, r, http.StatusOK, notice, "")
}

// Reanalyze re-fetches the repository recorded by a history entry.
func (h *Handler) Reanalyze(w http.ResponseWriter, r *http.Request) {
	const op = "web.Reanalyze"
	log := h.requestLogger(r, op)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderStatus(w, r, http.StatusNotFound, "No such history entry.")
		return
	}

	entry, err := h.history.HistoryEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			h.renderStatus(w, r, http.StatusNotFound, "No such history entry.")
			return
		}
		log.Error("error while loading history entry", slog.Int64("id", id), sl.Err(err))
		h.renderStatus(w, r, http.StatusInternalServerError, "Failed to load history entry.")
		return
	}
	if entry.RepoURL == "" {
		h.renderStatus(w, r, http.StatusBadRequest, "This entry covers every repository and cannot be re-fetched.")
		return
	}

	if _, err := h.pulls.Sync(r.Context(), entry.RepoURL); err != nil {
		status, msg := syncFailure(err)
		log.Error("re-analyze failed", slog.String("repo_url", entry.RepoURL), sl.Err(err))
		h.renderDashboard(w, r, status, "", msg)
		return
	}

	http.Redirect(w, r, "/dashboard?reanalyzed="+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (h *Handler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, notice, failure string) {
	const op = "web.Dashboard"
	log := h.requestLogger(r, op)

	data := dashboardPage{page: page{Title: "Analysis history", Notice: notice, Error: failure}}

	resp, err := h.history.History(r.Context())
	if err != nil {
		log.Error("error while loading history", sl.Err(err))
		data.Error = "Failed to load history."
		h.render(w, r, http.StatusInternalServerError, pageDashboard, data)
		return
	}
	data.History = resp.History

	h.render(w, r, status, pageDashboard, data)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, r, status, pageStatus, statusPage{
		page:    page{Title: strconv.Itoa(status) + " " + http.StatusText(status)},
		Message: msg,
	})
}

// render executes into a buffer first so a template failure never leaves a half written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.requestLogger(r, "web.render").Error("failed to render page", slog.String("page", name), sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) requestLogger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// syncFailure maps a sync error to the status and the message shown inline.
func syncFailure(err error) (int, string) {
	switch {
	case errors.Is(err, github.ErrInvalidRepoURL):
		return http.StatusBadRequest, "Invalid GitHub repository URL."
	case errors.Is(err, github.ErrMalformedResponse):
		return http.StatusBadRequest, "GitHub returned an invalid response."
	case errors.Is(err, github.ErrUpstream):
		return http.StatusInternalServerError, "Failed to fetch pull requests from GitHub."
	default:
		return http.StatusInternalServerError, "Something went wrong while saving pull requests."
	}
}
