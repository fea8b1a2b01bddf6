package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentdesk/internal/config"
	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/recruitment"
	"github.com/jonathan/talentdesk/internal/server/ratelimit"
	"github.com/jonathan/talentdesk/internal/types"
)

const (
	testAdminUser     = "reviewer"
	testAdminPassword = "correct horse battery staple"
)

type testServer struct {
	*Server
	handler http.Handler
	token   string
}

type testServerOption func(*Config)

func rateLimited(rl *ratelimit.Config) testServerOption {
	return func(c *Config) { c.RateLimit = rl }
}

func newTestAdmin(t *testing.T) *config.AdminConfig {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", testAdminUser)
	t.Setenv("ADMIN_PASSWORD", testAdminPassword)
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	admin, err := config.NewAdminConfig(&config.PasswordConfig{BcryptCost: 4})
	require.NoError(t, err)
	return admin
}

// newTestServer builds a server over an in-memory store with rate limiting
// disabled and returns it with a valid admin token.
func newTestServer(t *testing.T, opts ...testServerOption) *testServer {
	t.Helper()

	var (
		mu    sync.Mutex
		clock = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	)
	svc := recruitment.New(recruitment.LocalRepositories(localstore.NewMemoryStore()), recruitment.Options{
		Clock: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(time.Minute)
			return clock
		},
	})

	cfg := Config{
		Service:   svc,
		JWT:       &config.JWTConfig{Secret: testJWTSecret, Issuer: "talentdesk", ExpirationHours: 1},
		Admin:     newTestAdmin(t),
		RateLimit: &ratelimit.Config{Enabled: false},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	token, _, err := s.jwtService.GenerateToken(testAdminUser, types.RoleAdmin)
	require.NoError(t, err)

	return &testServer{Server: s, handler: s.Handler(), token: token}
}

// do sends a request through the full middleware chain. body may be nil,
// a []byte, or a value encoded as JSON.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

// admin sends a request as the authenticated admin.
func (ts *testServer) admin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return ts.do(t, method, path, body, ts.token)
}

// decodeData unmarshals the "data" member of a mutation response.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) (T, recruitment.SyncState) {
	t.Helper()
	var resp struct {
		Data T                     `json:"data"`
		Sync recruitment.SyncState `json:"sync"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp.Data, resp.Sync
}

func decodeList[T any](t *testing.T, w *httptest.ResponseRecorder) []T {
	t.Helper()
	var resp ListResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	assert.Equal(t, len(resp.Items), resp.Count)
	return resp.Items
}

func decodeJSONBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp["error"]
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	svc := recruitment.New(recruitment.LocalRepositories(localstore.NewMemoryStore()), recruitment.Options{})
	_, err = New(Config{Service: svc})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodOptions, "/candidates", nil, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	w := ts.admin(t, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, rateLimited(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	}))

	for i := 0; i < 2; i++ {
		w := ts.admin(t, http.MethodGet, "/job-postings", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := ts.admin(t, http.MethodGet, "/job-postings", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "rate_limit_exceeded", resp["error"])

	// Health checks are never limited.
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/health", nil, "").Code)
}

func TestSwaggerDoc(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/swagger/doc.json", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/imported-cvs/{id}/review")
}

func TestDecodeJSON_RejectsBadBodies(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body []byte
		want string
	}{
		{"empty", []byte(""), "request body is empty"},
		{"malformed", []byte("{"), "Invalid request body"},
		{"unknown field", []byte(`{"title":"x","colour":"red"}`), "unknown field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.admin(t, http.MethodPost, "/job-postings", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeError(t, w), tt.want)
		})
	}
}
