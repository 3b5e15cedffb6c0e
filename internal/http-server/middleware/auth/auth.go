package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"article-api/internal/domain/models"
	"article-api/internal/lib/api/messages"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/jwt"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/service/user"
)

const realm = `Basic realm="article-api"`

var (
	errNoCredentials = errors.New("no credentials")
	errInvalidToken  = errors.New("invalid token")
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Authenticator
type Authenticator interface {
	Authenticate(ctx context.Context, userName, password string) (models.User, error)
}

// Auth resolves the caller from a Bearer token or Basic credentials.
type Auth struct {
	log           *slog.Logger
	tokenAuth     *jwtauth.JWTAuth
	authenticator Authenticator
}

func New(log *slog.Logger, tokenAuth *jwtauth.JWTAuth, authenticator Authenticator) *Auth {
	return &Auth{
		log:           log.With(slog.String("component", "middleware/auth")),
		tokenAuth:     tokenAuth,
		authenticator: authenticator,
	}
}

// RequireRole rejects callers that are not authenticated (401) or lack role (403).
func (a *Auth) RequireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			caller, err := a.caller(r)
			if err != nil {
				if errors.Is(err, errNoCredentials) || errors.Is(err, errInvalidToken) ||
					errors.Is(err, user.ErrInvalidCredentials) {
					a.log.Info("unauthenticated request", slog.String("path", r.URL.Path), sl.Error(err))
					w.Header().Set("WWW-Authenticate", realm)
					resp.Error(w, r, http.StatusUnauthorized, messages.Get(messages.Unauthorized))
					return
				}

				a.log.Error("failed to authenticate request", sl.Error(err))
				resp.Error(w, r, http.StatusInternalServerError, messages.Get(messages.InternalError))
				return
			}

			if !caller.HasRole(role) {
				a.log.Info("access denied",
					slog.String("user", caller.Name),
					slog.String("role", role),
				)
				resp.Error(w, r, http.StatusForbidden, messages.Get(messages.Forbidden))
				return
			}

			next.ServeHTTP(w, r)
		}

		return jwtauth.Verifier(a.tokenAuth)(http.HandlerFunc(fn))
	}
}

func (a *Auth) caller(r *http.Request) (models.User, error) {
	u, err := jwt.UserFromContext(r.Context())
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, jwtauth.ErrNoTokenFound) {
		return models.User{}, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	name, password, ok := r.BasicAuth()
	if !ok {
		return models.User{}, errNoCredentials
	}

	return a.authenticator.Authenticate(r.Context(), name, password)
}
