package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"product-intel/internal/auth"
	"product-intel/internal/catalog"
	"product-intel/internal/config"
	"product-intel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	users map[string]domain.User
	err   error
}

func (f *fakeUsers) ListUsers(context.Context) ([]domain.User, error) {
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, f.err
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type testEnv struct {
	router *gin.Engine
	tokens *auth.TokenService
	users  *fakeUsers
	cat    *catalog.Catalog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	require.NoError(t, err)

	tokens := auth.NewTokenService(config.Config{JWTSecret: "test", JWTExpiresIn: time.Hour})
	users := &fakeUsers{users: map[string]domain.User{
		"user_1": {ID: "user_1", Email: "ada@example.com", Tier: domain.TierPro, ShortCredits: 7, MediumCredits: 2},
	}}

	return &testEnv{
		router: NewRouter(RouterDeps{
			Catalog:   cat,
			Users:     users,
			Tokens:    tokens,
			SignInURL: "https://accounts.example.com/sign-in",
			SignUpURL: "https://accounts.example.com/sign-up",
		}),
		tokens: tokens,
		users:  users,
		cat:    cat,
	}
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []domain.ProductIntelligence
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, env.cat.Len())
}

func TestSearchCategories(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/categories?q=pet", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got []domain.ProductIntelligence
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "pet_supplies", got[0].ID)

	w = env.do(http.MethodGet, "/api/v1/categories?q=zzz", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCategory(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/categories/pet_supplies", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rec domain.ProductIntelligence
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "pet_supplies", rec.ID)
	assert.Equal(t, domain.CompetitionHigh, rec.Competition)

	w = env.do(http.MethodGet, "/api/v1/categories/unicorns", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"category not found"}`, w.Body.String())
}

func TestGetPrompt(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/categories/smart_home/prompt?length=medium", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Category string `json:"category"`
		Length   string `json:"length"`
		Prompt   string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "smart_home", resp.Category)
	assert.Equal(t, "medium", resp.Length)
	assert.Contains(t, resp.Prompt, "Smart Home")

	w = env.do(http.MethodGet, "/api/v1/categories/smart_home/prompt?length=huge", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/v1/categories/unicorns/prompt", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := env.tokens.GenerateToken("user_1")
	require.NoError(t, err)
	w = env.do(http.MethodGet, "/api/v1/me", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user_1","email":"ada@example.com","tier":"pro","short_credits":7,"medium_credits":2}`, w.Body.String())

	ghost, err := env.tokens.GenerateToken("user_ghost")
	require.NoError(t, err)
	w = env.do(http.MethodGet, "/api/v1/me", "", ghost)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.users.err = errors.New("db down")
	w = env.do(http.MethodGet, "/api/v1/me", "", tok)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestExtensionEvent(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"installed", `{"event":"installed","version":"1.0.0"}`, http.StatusAccepted},
		{"updated without version", `{"event":"updated"}`, http.StatusAccepted},
		{"unknown event", `{"event":"uninstalled"}`, http.StatusBadRequest},
		{"missing event", `{}`, http.StatusBadRequest},
		{"bad json", `{"event":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/v1/extension/events", tt.body, "")
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestAuthPagesRedirect(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/sign-in/factor-one", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://accounts.example.com/sign-in/factor-one", w.Header().Get("Location"))

	w = env.do(http.MethodGet, "/sign-up/", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://accounts.example.com/sign-up", w.Header().Get("Location"))
}

func TestAuthRedirectKeepsPathAndQuery(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path string
		want string
	}{
		{"/sign-in/sso-callback?redirect_url=%2Fdashboard", "https://accounts.example.com/sign-in/sso-callback?redirect_url=%2Fdashboard"},
		{"/sign-up/verify-email-address", "https://accounts.example.com/sign-up/verify-email-address"},
		{"/sign-in/?x=1", "https://accounts.example.com/sign-in?x=1"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := env.do(http.MethodGet, tt.path, "", "")
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Location"))
		})
	}
}
