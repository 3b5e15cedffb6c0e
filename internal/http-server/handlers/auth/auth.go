package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"article-api/internal/lib/api/messages"
	req "article-api/internal/lib/api/request"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/service/user"
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	Login(ctx context.Context, userName, password string) (token string, err error)
}

type Auth struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Auth {
	return &Auth{
		log:     log,
		service: service,
	}
}

func (a *Auth) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Post("/token", a.token)
	}
}

// token exchanges Basic credentials, or a JSON credentials body, for a JWT.
func (a *Auth) token(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"

	log := a.log.With(slog.String("op", op))

	var cred req.Credentials
	if name, password, ok := r.BasicAuth(); ok {
		cred.UserName, cred.Password = name, password
	} else if err := render.DecodeJSON(r.Body, &cred); err != nil {
		log.Info("no credentials in request", sl.Error(err))
		unauthorized(w, r)
		return
	}

	// Validate user creds
	if cred.UserName == "" || cred.Password == "" {
		log.Info("user name or password is empty")
		unauthorized(w, r)
		return
	}

	// Send to service layer
	token, err := a.service.Login(r.Context(), cred.UserName, cred.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			log.Info("invalid credentials", slog.String("user", cred.UserName))
			unauthorized(w, r)
			return
		}

		log.Error("failed to create new token", sl.Error(err))
		resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
		return
	}

	// Write response
	render.JSON(w, r, resp.Response{
		Status: resp.StatusOk,
		Token:  token,
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Basic realm="article-api"`)
	resp.Error(w, r, http.StatusUnauthorized, messages.Get(messages.Unauthorized))
}
