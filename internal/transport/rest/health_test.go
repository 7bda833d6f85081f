package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type dbPingerMock struct {
	err      error
	deadline bool
}

func (m *dbPingerMock) Ping(ctx context.Context) error {
	_, m.deadline = ctx.Deadline()
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("down")}, "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus string
	}{
		{"db up", nil, http.StatusOK, "ok"},
		{"db down", errors.New("connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := &dbPingerMock{err: tt.err}
			h := NewHealthHandler(db, "test-version")

			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			resp := decodeHealth(t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
			if resp.Components != nil {
				t.Errorf("ready must not expose components, got %v", resp.Components)
			}
			if !db.deadline {
				t.Error("expected ping context to carry a deadline")
			}
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	h := NewHealthHandler(&dbPingerMock{}, "v1.2.3")
	h.now = func() time.Time { return fixed }

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "ok" || resp.Version != "v1.2.3" {
		t.Errorf("unexpected response %+v", resp)
	}
	if !resp.Timestamp.Equal(fixed) {
		t.Errorf("timestamp = %v, want %v", resp.Timestamp, fixed)
	}
	db, ok := resp.Components["database"]
	if !ok || db.Status != "ok" {
		t.Fatalf("expected database component ok, got %+v", resp.Components)
	}
	if db.Latency == "" {
		t.Error("expected non-empty latency")
	}
}

func TestHealth_DBDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(&dbPingerMock{err: errors.New("connection refused")}, "v1.2.3")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	resp := decodeHealth(t, rec)
	if resp.Status != "down" {
		t.Errorf("expected status 'down', got %q", resp.Status)
	}
	if db := resp.Components["database"]; db.Status != "down" || db.Latency != "" {
		t.Errorf("expected database down without latency, got %+v", db)
	}
}
