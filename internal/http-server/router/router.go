package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"

	"article-api/internal/domain/models"
	"article-api/internal/http-server/handlers/article"
	"article-api/internal/http-server/handlers/auth"
	authmw "article-api/internal/http-server/middleware/auth"
	mwLogger "article-api/internal/http-server/middleware/logger"
	mwMetrics "article-api/internal/http-server/middleware/metrics"
	"article-api/internal/lib/api/messages"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/lib/metrics"
)

const RoleAdmin = "ADMIN"

// UserService authenticates callers and issues tokens.
type UserService interface {
	Authenticate(ctx context.Context, userName, password string) (models.User, error)
	Login(ctx context.Context, userName, password string) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds the HTTP handler tree of the service.
func New(log *slog.Logger, secret string, articles article.Service, users UserService, db Pinger) http.Handler {
	tokenAuth := jwtauth.New("HS256", []byte(secret), nil)
	guard := authmw.New(log, tokenAuth, users)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mwLogger.New(log))
	r.Use(middleware.Recoverer)
	r.Use(mwMetrics.New)

	// Init handlers
	art := article.New(log, articles)
	usr := auth.New(log, users)

	r.Route("/article", art.Register(guard.RequireRole(RoleAdmin)))
	r.Route("/auth", usr.Register())

	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", health(log, db))

	return r
}

func health(log *slog.Logger, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			log.Error("storage is unavailable", sl.Error(err))
			resp.Error(w, r, http.StatusServiceUnavailable, messages.Get(messages.StorageDown))
			return
		}

		render.JSON(w, r, resp.OK())
	}
}
