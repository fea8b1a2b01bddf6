package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/imported-cvs"},
	{http.MethodPost, "/imported-cvs/stream"},
	{http.MethodGet, "/imported-cvs"},
	{http.MethodGet, "/imported-cvs/export.xlsx"},
	{http.MethodGet, "/imported-cvs/cv1"},
	{http.MethodPost, "/imported-cvs/cv1/review"},
	{http.MethodDelete, "/imported-cvs/cv1"},
	{http.MethodPost, "/extract"},
	{http.MethodGet, "/candidates"},
	{http.MethodPost, "/candidates"},
	{http.MethodGet, "/candidates/c1"},
	{http.MethodPost, "/candidates/c1/status"},
	{http.MethodPost, "/candidates/c1/accept"},
	{http.MethodPost, "/candidates/c1/waiting-list"},
	{http.MethodPost, "/candidates/c1/reject"},
	{http.MethodPost, "/candidates/c1/rate"},
	{http.MethodGet, "/candidates/c1/interviews"},
	{http.MethodPost, "/interviews"},
	{http.MethodGet, "/interviews/i1"},
	{http.MethodPost, "/interviews/i1/complete"},
	{http.MethodPost, "/interviews/i1/cancel"},
	{http.MethodGet, "/job-postings"},
	{http.MethodPost, "/job-postings"},
	{http.MethodGet, "/job-postings/p1"},
	{http.MethodPut, "/job-postings/p1"},
	{http.MethodDelete, "/job-postings/p1"},
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, route := range protectedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := ts.do(t, route.method, route.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			w = ts.do(t, route.method, route.path, nil, "forged.token.value")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestProtectedRoutes_RequireAdminRole(t *testing.T) {
	ts := newTestServer(t)
	viewer, _, err := ts.jwtService.GenerateToken("viewer", "viewer")
	require.NoError(t, err)

	for _, route := range protectedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := ts.do(t, route.method, route.path, nil, viewer)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}
}

func TestProtectedRoutes_AdminReachesHandlers(t *testing.T) {
	ts := newTestServer(t)

	for _, route := range protectedRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := ts.admin(t, route.method, route.path, nil)
			assert.NotEqual(t, http.StatusUnauthorized, w.Code)
			assert.NotEqual(t, http.StatusForbidden, w.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}

func TestPublicRoutes_NoToken(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/health", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPost, "/auth/login", []byte("{"), "").Code)
}
