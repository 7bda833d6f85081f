package rest

import (
	"context"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

const (
	statusOK   = "ok"
	statusDown = "down"

	defaultCheckTimeout = 3 * time.Second
)

// HealthHandler serves the liveness, readiness and detailed health probes.
type HealthHandler struct {
	checks  map[string]pinger
	version string
	timeout time.Duration
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler that probes db as the
// "database" component.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		checks:  map[string]pinger{"database": db},
		version: version,
		timeout: defaultCheckTimeout,
		now:     time.Now,
	}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always returns 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready returns 503 when any dependency is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.probe(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{Status: overall, Timestamp: h.now()})
}

// Health reports every dependency with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.probe(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	overall := statusOK
	components := make(map[string]CompStatus, len(h.checks))
	for name, c := range h.checks {
		start := time.Now()
		if err := c.Ping(ctx); err != nil {
			components[name] = CompStatus{Status: statusDown}
			overall = statusDown
			continue
		}
		components[name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}
	return overall, components
}

func httpStatus(overall string) int {
	if overall != statusOK {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
