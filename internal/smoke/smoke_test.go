package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

func TestRunner_Run(t *testing.T) {
	checks := []Check{
		{Name: "ok", Run: func(context.Context) error { return nil }},
		{Name: "broken", Run: func(context.Context) error { return fmt.Errorf("boom") }},
		{Name: "skipped", Run: func(context.Context) error { return fmt.Errorf("%w: no creds", ErrSkipped) }},
	}

	var out bytes.Buffer
	passed := NewRunner(&out).Run(context.Background(), checks)

	assert.False(t, passed)
	assert.Contains(t, out.String(), "PASS  ok")
	assert.Contains(t, out.String(), "FAIL  broken: boom")
	assert.Contains(t, out.String(), "SKIP  skipped")
	assert.Contains(t, out.String(), "1 passed, 1 failed, 1 skipped")
}

func TestRunner_Run_AllGreen(t *testing.T) {
	checks := []Check{
		{Name: "one", Run: func(context.Context) error { return nil }},
		{Name: "two", Run: func(context.Context) error { return nil }},
	}

	var out bytes.Buffer
	passed := NewRunner(&out).Run(context.Background(), checks)

	assert.True(t, passed)
	assert.Contains(t, out.String(), "2 passed, 0 failed, 0 skipped")
}

func TestLocalChecks(t *testing.T) {
	ctx := context.Background()

	for _, check := range LocalChecks() {
		t.Run(check.Name, func(t *testing.T) {
			assert.NoError(t, check.Run(ctx))
		})
	}
}

func TestConnectionChecks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/categories/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]pkgapi.Category{})
	}))
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL})

	checks := ConnectionChecks(client)
	require.Len(t, checks, 1)
	assert.NoError(t, checks[0].Run(context.Background()))
}

func TestAuthChecks_SkippedWithoutCredentials(t *testing.T) {
	t.Setenv(EnvTestPhone, "")
	t.Setenv(EnvTestPassword, "")

	client := api.NewClient(api.Config{BaseURL: "http://localhost:0"})

	for _, check := range AuthChecks(client) {
		err := check.Run(context.Background())
		assert.ErrorIs(t, err, ErrSkipped)
	}
}

func TestAuthChecks_WithFakeService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "token-abc", UserID: "user-123"})
		case "/api/v1/auth/me":
			_ = json.NewEncoder(w).Encode(pkgapi.UserInfo{ID: "user-123"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	t.Setenv(EnvTestPhone, "+919876543210")
	t.Setenv(EnvTestPassword, "secret123")

	client := api.NewClient(api.Config{BaseURL: server.URL})

	for _, check := range AuthChecks(client) {
		t.Run(check.Name, func(t *testing.T) {
			assert.NoError(t, check.Run(context.Background()))
		})
	}
}
