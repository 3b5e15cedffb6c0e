package article

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"article-api/internal/domain/dto"
	"article-api/internal/domain/models"
	"article-api/internal/lib/api/messages"
	req "article-api/internal/lib/api/request"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/api/validate"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/service/article"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Create(ctx context.Context, art dto.Article) (dto.Article, error)
	List(ctx context.Context, pageNumber, pageSize *int, sortField *string, ascending *bool) (models.Page[dto.Article], error)
	Statistics(ctx context.Context) (dto.Statistics, error)
}

type Article struct {
	log       *slog.Logger
	service   Service
	validator *validate.Validator
}

func New(log *slog.Logger, service Service) *Article {
	return &Article{
		log:       log,
		service:   service,
		validator: validate.New(),
	}
}

// Register mounts the article routes. adminOnly guards the statistics endpoint.
func (a *Article) Register(adminOnly func(http.Handler) http.Handler) func(r chi.Router) {
	return func(r chi.Router) {
		// Public routes
		r.Post("/", a.create)
		r.Get("/list", a.list)

		// Require ADMIN
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/statistics", a.statistics)
		})
	}
}

func (a *Article) create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"

	log := a.log.With(slog.String("op", op))

	var art dto.Article
	err := render.DecodeJSON(r.Body, &art)
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Info("request body is empty")
		} else {
			log.Info("failed to decode request", sl.Error(err))
		}
		resp.Error(w, r, http.StatusBadRequest, messages.Get(messages.InvalidBody))
		return
	}

	// Validation
	if err := a.validator.Struct(art); err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			log.Info("invalid article", slog.Any("codes", verr.Codes))
			resp.Error(w, r, http.StatusBadRequest, verr.Messages()...)
			return
		}

		log.Error("failed to validate article", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	// Send to service layer
	created, err := a.service.Create(r.Context(), art)
	if err != nil {
		log.Error("failed to create article", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	// Write response
	render.JSON(w, r, created)
}

func (a *Article) list(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"

	log := a.log.With(slog.String("op", op))

	pageNumber, err := req.OptionalInt(r, "pageNumber")
	if err != nil {
		a.badParam(w, r, log, err)
		return
	}

	pageSize, err := req.OptionalInt(r, "pageSize")
	if err != nil {
		a.badParam(w, r, log, err)
		return
	}

	ascending, err := req.OptionalBool(r, "ascending")
	if err != nil {
		a.badParam(w, r, log, err)
		return
	}

	sortField := req.OptionalString(r, "sortField")

	// Send to service layer
	page, err := a.service.List(r.Context(), pageNumber, pageSize, sortField, ascending)
	if err != nil {
		if errors.Is(err, article.ErrInvalidSortField) {
			field := ""
			if sortField != nil {
				field = *sortField
			}
			log.Info("invalid sort field", slog.String("sort_field", field))
			resp.Error(w, r, http.StatusBadRequest, messages.Get(messages.InvalidSortField, field))
			return
		}

		log.Error("failed to list articles", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	// Write response
	render.JSON(w, r, page)
}

func (a *Article) statistics(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.statistics"

	log := a.log.With(slog.String("op", op))

	// Send to service layer
	stats, err := a.service.Statistics(r.Context())
	if err != nil {
		log.Error("failed to compute statistics", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	// Write response
	render.JSON(w, r, stats)
}

func (a *Article) badParam(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var perr *req.ParamError
	if !errors.As(err, &perr) {
		log.Error("failed to parse query", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	log.Info("invalid query parameter", slog.String("param", perr.Name), slog.String("value", perr.Value))
	resp.Error(w, r, http.StatusBadRequest, messages.Get(messages.InvalidParam, perr.Value, perr.Name))
}
