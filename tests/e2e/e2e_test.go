//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/roommate-backend/internal/adapter/postgres/testhelper"
	"github.com/campusshare/roommate-backend/internal/config"
	"github.com/campusshare/roommate-backend/internal/domain"
)

func TestE2E_Probes(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		code, body := ts.get(t, path, "")
		assert.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, "ok", body["status"], path)
	}

	resp, err := ts.Client.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_RequestIDEchoed(t *testing.T) {
	ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/live", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "e2e-req-1")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "e2e-req-1", resp.Header.Get("X-Request-Id"))
}

func TestE2E_Matches(t *testing.T) {
	ts := setupTestServer(t)

	requester := testhelper.SeedUser(t, ts.Pool)
	testhelper.SeedProfile(t, ts.Pool, requester.ID)

	twin := testhelper.SeedUser(t, ts.Pool)
	twinProfile := testhelper.SeedProfile(t, ts.Pool, twin.ID)

	pricey := testhelper.SeedUser(t, ts.Pool)
	testhelper.SeedProfile(t, ts.Pool, pricey.ID, testhelper.WithProfile(func(p *domain.RoommateProfile) {
		p.RentBudget = domain.RentBudget{Min: 2000, Max: 3000}
	}))

	gone := testhelper.SeedUser(t, ts.Pool)
	testhelper.SeedProfile(t, ts.Pool, gone.ID, testhelper.WithStatus(domain.ProfileStatusCancelled))

	code, body := ts.get(t, "/api/roommates/matches", ts.token(t, requester.ID))
	require.Equal(t, http.StatusOK, code, "body: %v", body)

	matches, ok := body["matches"].([]any)
	require.True(t, ok)

	// Other tests share the database, so only look at this test's owners.
	var ours []map[string]any
	for _, m := range matches {
		mm := m.(map[string]any)
		owner := mm["candidateProfile"].(map[string]any)["ownerId"]
		switch owner {
		case requester.ID.String(), gone.ID.String():
			t.Fatalf("unexpected owner %v in matches", owner)
		case twin.ID.String(), pricey.ID.String():
			ours = append(ours, mm)
		}
	}
	require.Len(t, ours, 2)

	best := ours[0]
	assert.Equal(t, twinProfile.ID.String(), best["candidateProfile"].(map[string]any)["id"])
	assert.InDelta(t, 1.0, best["compatibilityScore"], 1e-9)
	assert.Equal(t, "excellent", best["quality"])
	assert.Equal(t, twin.Name, best["owner"].(map[string]any)["name"])
	assert.Empty(t, best["dealBreakers"])

	worst := ours[1]
	assert.Contains(t, worst["dealBreakers"], "Budget")
	assert.Less(t, worst["compatibilityScore"].(float64), best["compatibilityScore"].(float64))
}

func TestE2E_MatchesErrors(t *testing.T) {
	ts := setupTestServer(t, func(c *config.Config) {
		c.RateLimit.MatchesPerMinute = 60
		c.RateLimit.Burst = 2
	})

	t.Run("unauthenticated", func(t *testing.T) {
		code, body := ts.get(t, "/api/roommates/matches", "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "unauthorized", body["error"])
	})

	t.Run("no active profile then rate limited", func(t *testing.T) {
		tok := ts.token(t, uuid.New())

		code, body := ts.get(t, "/api/roommates/matches", tok)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "no_active_profile", body["error"])

		code, body = ts.get(t, "/api/roommates/matches?limit=-1", tok)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "validation_error", body["error"])

		code, body = ts.get(t, "/api/roommates/matches", tok)
		assert.Equal(t, http.StatusTooManyRequests, code)
		assert.Equal(t, "rate_limited", body["error"])
	})
}
