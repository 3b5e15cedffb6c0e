package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"article-api/internal/http-server/handlers/auth/mocks"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/logger/handlers/slogdiscard"
	"article-api/internal/service/user"
)

func newRouter(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/auth", New(slogdiscard.NewDiscardLogger(), svc).Register())
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) resp.Response {
	t.Helper()

	var body resp.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestToken_Basic(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Login", mock.Anything, "admin", "admin123").Return("signed.jwt.token", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.SetBasicAuth("admin", "admin123")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, resp.StatusOk, body.Status)
	assert.Equal(t, "signed.jwt.token", body.Token)
}

func TestToken_JSONBody(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Login", mock.Anything, "user", "user123").Return("token", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/token",
		strings.NewReader(`{"user_name":"user","password":"user123"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token", decode(t, rec).Token)
}

func TestToken_Unauthorized(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		body  string
		login error
	}{
		{name: "no credentials"},
		{name: "empty password", body: `{"user_name":"admin"}`},
		{
			name:  "wrong password",
			setup: func(r *http.Request) { r.SetBasicAuth("admin", "nope") },
			login: fmt.Errorf("service.user.Login: %w", user.ErrInvalidCredentials),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewService(t)
			if tt.login != nil {
				svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", tt.login)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			if tt.setup != nil {
				tt.setup(req)
			}
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Basic")
			assert.Equal(t, resp.StatusError, decode(t, rec).Status)
		})
	}
}

func TestToken_ServiceError(t *testing.T) {
	svc := mocks.NewService(t)
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("signing failed"))

	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.SetBasicAuth("admin", "admin123")
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
