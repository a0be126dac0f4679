package pr

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
	"github.com/go-playground/validator/v10"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=prService --structname=MockPrService --output=../mocks --outpkg=mocks
type prService interface {
	Sync(ctx context.Context, repoURL string) (*api.FetchResponse, error)
	List(ctx context.Context, repoURL string) (*api.ListResponse, error)
}

type PrHandler struct {
	log     *slog.Logger
	service prService
}

func NewPrHandler(log *slog.Logger, s prService) *PrHandler {
	return &PrHandler{
		log:     log,
		service: s,
	}
}

type FetchRequest struct {
	RepoURL string `json:"repoUrl" validate:"required"`
}

func (h *PrHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.Fetch"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input FetchRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Sync(ctx, input.RepoURL)
	if err != nil {
		switch {
		case errors.Is(err, github.ErrInvalidRepoURL):
			log.Info("invalid repository url", slog.String("repo_url", input.RepoURL))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidRepoURL, "invalid github repository url"))

		case errors.Is(err, github.ErrMalformedResponse):
			log.Error("invalid response from github", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeUpstreamInvalid, "invalid response from github"))

		case errors.Is(err, github.ErrUpstream):
			log.Error("github request failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.Error(api.ErrCodeUpstream, "failed to fetch pull requests from github"))

		default:
			log.Error("error while syncing pull requests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, api.InternalError())
		}
		return
	}

	log.Info("pull requests synced",
		slog.String("repo_url", input.RepoURL),
		slog.Int("total", resp.TotalPRs),
		slog.Int("created", resp.Created),
	)

	render.JSON(w, r, resp)
}

func (h *PrHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pr.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	resp, err := h.service.List(r.Context(), r.URL.Query().Get("repoUrl"))
	if err != nil {
		if errors.Is(err, github.ErrInvalidRepoURL) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrCodeInvalidRepoURL, "invalid github repository url"))
			return
		}
		log.Error("error while listing pull requests", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
