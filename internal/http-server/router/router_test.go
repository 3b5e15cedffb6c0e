package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/config"
	"article-api/internal/domain/dto"
	"article-api/internal/lib/api/messages"
	resp "article-api/internal/lib/api/response"
	"article-api/internal/lib/logger/handlers/slogdiscard"
	articleservice "article-api/internal/service/article"
	userservice "article-api/internal/service/user"
	"article-api/internal/storage/sqlite"
	"article-api/internal/storage/users"
)

const secret = "router-secret"

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("database is locked") }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "articles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	accounts, err := users.New([]config.User{
		{Name: "user", Password: "user123", Roles: []string{"USER"}},
		{Name: "admin", Password: "admin123", Roles: []string{"USER", "ADMIN"}},
	})
	require.NoError(t, err)

	h := New(log, secret,
		articleservice.New(log, db),
		userservice.New(log, accounts, time.Hour, secret),
		db,
	)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv
}

func call(t *testing.T, method, url, body string, setup func(r *http.Request)) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if setup != nil {
		setup(req)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, b
}

func basic(name, password string) func(r *http.Request) {
	return func(r *http.Request) { r.SetBasicAuth(name, password) }
}

func TestRouter_ArticleLifecycle(t *testing.T) {
	srv := newServer(t)

	published := time.Now().UTC().Add(-time.Minute).Format(time.RFC3339)
	for i := 1; i <= 3; i++ {
		body := fmt.Sprintf(`{"title":"Title%d","author":"Author","content":"Content","publishingDate":%q}`, i, published)
		res, b := call(t, http.MethodPost, srv.URL+"/article", body, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, string(b))

		var created dto.Article
		require.NoError(t, json.Unmarshal(b, &created))
		assert.Equal(t, int64(i), created.ID)
	}

	res, b := call(t, http.MethodGet, srv.URL+"/article/list?pageSize=2&sortField=title&ascending=false", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page struct {
		Content       []dto.Article `json:"content"`
		TotalElements int64         `json:"totalElements"`
		PageSize      int           `json:"pageSize"`
	}
	require.NoError(t, json.Unmarshal(b, &page))
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.PageSize)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "Title3", page.Content[0].Title)
	assert.Equal(t, "Title2", page.Content[1].Title)

	res, b = call(t, http.MethodGet, srv.URL+"/article/statistics", "", basic("admin", "admin123"))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats dto.Statistics
	require.NoError(t, json.Unmarshal(b, &stats))
	require.Len(t, stats.Days, 7)

	total := 0
	for _, d := range stats.Days {
		total += d.Count
	}
	assert.Equal(t, 3, total)
}

func TestRouter_InvalidSortField(t *testing.T) {
	srv := newServer(t)

	res, b := call(t, http.MethodGet, srv.URL+"/article/list?sortField=rating", "", nil)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, string(b), "No property 'rating' found for type 'Article'")
}

func TestRouter_FarPastLastPage(t *testing.T) {
	srv := newServer(t)

	body := `{"title":"T","author":"A","content":"C","publishingDate":"2024-05-07T10:00:00Z"}`
	res, _ := call(t, http.MethodPost, srv.URL+"/article", body, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, b := call(t, http.MethodGet, srv.URL+"/article/list?pageNumber=1000000000000000000&pageSize=10", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t,
		`{"content":[],"totalElements":1,"pageNumber":1000000000000000000,"pageSize":10}`,
		string(b))
}

func TestRouter_StatisticsAccess(t *testing.T) {
	srv := newServer(t)

	res, _ := call(t, http.MethodGet, srv.URL+"/article/statistics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, res.Header.Get("WWW-Authenticate"), "Basic")

	res, _ = call(t, http.MethodGet, srv.URL+"/article/statistics", "", basic("admin", "wrong"))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = call(t, http.MethodGet, srv.URL+"/article/statistics", "", basic("user", "user123"))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRouter_BearerToken(t *testing.T) {
	srv := newServer(t)

	res, b := call(t, http.MethodPost, srv.URL+"/auth/token", "", basic("admin", "admin123"))
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body resp.Response
	require.NoError(t, json.Unmarshal(b, &body))
	require.NotEmpty(t, body.Token)

	res, _ = call(t, http.MethodGet, srv.URL+"/article/statistics", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+body.Token)
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv := newServer(t)

	res, b := call(t, http.MethodGet, srv.URL+"/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"status":"OK"}`, string(b))

	res, b = call(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(b), "articleapi_http_requests_total")
}

func TestRouter_HealthStorageDown(t *testing.T) {
	log := slogdiscard.NewDiscardLogger()
	h := New(log, secret, nil, nil, failingPinger{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body resp.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, resp.StatusError, body.Status)
	assert.Equal(t, []string{messages.Get(messages.StorageDown)}, body.Errors)
}
