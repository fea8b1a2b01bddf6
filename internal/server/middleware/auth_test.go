package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPrincipal struct {
	subject string
	role    string
}

func (p testPrincipal) GetSubject() string { return p.subject }
func (p testPrincipal) GetRole() string    { return p.role }

// testTokenValidator accepts a fixed set of tokens.
type testTokenValidator map[string]testPrincipal

func (v testTokenValidator) ValidateToken(tokenString string) (Principal, error) {
	p, ok := v[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return p, nil
}

func protectedHandler(t *testing.T, reached *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		w.Write([]byte(Subject(r))) //nolint:errcheck
	})
}

func TestAuthMiddleware(t *testing.T) {
	validator := testTokenValidator{
		"admin-token":  {subject: "alice", role: "admin"},
		"viewer-token": {subject: "bob", role: "viewer"},
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid admin", "Bearer admin-token", http.StatusOK, "alice"},
		{"lowercase scheme", "bearer admin-token", http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"basic scheme", "Basic admin-token", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"extra parts", "Bearer admin-token extra", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer forged", http.StatusUnauthorized, ""},
		{"wrong role", "Bearer viewer-token", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			handler := AuthMiddleware(validator, "admin")(protectedHandler(t, &reached))

			req := httptest.NewRequest(http.MethodGet, "/candidates", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, w.Body.String())
				return
			}

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestAuthMiddleware_AnyRole(t *testing.T) {
	var reached bool
	handler := AuthMiddleware(testTokenValidator{"t": {subject: "bob", role: "viewer"}})(protectedHandler(t, &reached))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer t")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestGetPrincipal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetPrincipal(req)
	require.Error(t, err)
	assert.Equal(t, "", Subject(req))

	req = req.WithContext(WithPrincipal(req.Context(), testPrincipal{subject: "alice", role: "admin"}))
	p, err := GetPrincipal(req)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.GetSubject())
	assert.Equal(t, "alice", Subject(req))
}

func TestGetPrincipal_InvalidType(t *testing.T) {
	ctx := context.WithValue(context.Background(), principalKey, "not-a-principal")
	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	_, err := GetPrincipal(req)
	assert.Error(t, err)
}
