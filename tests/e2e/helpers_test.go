//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/roommate-backend/internal/adapter/postgres/testhelper"
	"github.com/campusshare/roommate-backend/internal/app"
	authpkg "github.com/campusshare/roommate-backend/internal/auth"
	"github.com/campusshare/roommate-backend/internal/config"
)

const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter routes server logs through t.Log.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testJWTSecret,
			JWTIssuer:      testJWTIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		Matching: config.MatchingConfig{
			DefaultLimit:       50,
			MaxLimit:           200,
			ParallelThreshold:  64,
			Workers:            4,
			ExcellentThreshold: 0.8,
			GoodThreshold:      0.6,
			Weights: config.WeightsConfig{
				Budget: 0.25, Room: 0.10, Bathroom: 0.05, Dietary: 0.15, Pets: 0.10,
				Cleanliness: 0.10, Sleep: 0.10, Guests: 0.10, Study: 0.05,
			},
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			MatchesPerMinute: 600,
			Burst:            100,
			IdleTTL:          time.Minute,
			CleanupInterval:  time.Minute,
		},
	}
}

// setupTestServer bootstraps the full HTTP stack backed by a real PostgreSQL
// container (shared via testhelper).
func setupTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	handler, cleanup, err := app.NewHandler(logger, cfg, pool)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

func (ts *testServer) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(userID, "user")
	require.NoError(t, err)
	return tok
}

// get sends an authenticated GET when token is non-empty and decodes the
// JSON body.
func (ts *testServer) get(t *testing.T, path, token string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	}
	return resp.StatusCode, body
}
