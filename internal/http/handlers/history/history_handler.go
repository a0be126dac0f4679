package history

import (
	"context"
	"log/slog"
	"net/http"

	"prlens/internal/http/api"
	"prlens/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=historyService --structname=MockHistoryService --output=../mocks --outpkg=mocks
type historyService interface {
	History(ctx context.Context) (*api.HistoryResponse, error)
}

type HistoryHandler struct {
	log     *slog.Logger
	service historyService
}

func NewHistoryHandler(log *slog.Logger, s historyService) *HistoryHandler {
	return &HistoryHandler{
		log:     log,
		service: s,
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.history.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.History(r.Context())
	if err != nil {
		log.Error("error while loading history", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.Error(api.ErrInternalErr, "failed to load history"))
		return
	}

	render.JSON(w, r, resp)
}
