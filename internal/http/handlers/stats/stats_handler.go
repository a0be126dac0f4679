package stats

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"prlens/internal/github"
	"prlens/internal/http/api"
	"prlens/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=statsService --structname=MockStatsService --output=../mocks --outpkg=mocks
type statsService interface {
	Analyze(ctx context.Context, repoURL string) (*api.AnalysisResponse, error)
}

type StatsHandler struct {
	log     *slog.Logger
	service statsService
}

func NewStatsHandler(log *slog.Logger, s statsService) *StatsHandler {
	return &StatsHandler{
		log:     log,
		service: s,
	}
}

// Analyze aggregates stored pulls. The optional repoUrl query parameter narrows it to one repository.
func (h *StatsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.Analyze"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.Analyze(r.Context(), r.URL.Query().Get("repoUrl"))
	if err != nil {
		if errors.Is(err, github.ErrInvalidRepoURL) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidRepoURL, "invalid github repository url"))
			return
		}
		log.Error("error while analyzing pull requests", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
