package rest

import (
	"net/http"

	"github.com/campusshare/roommate-backend/internal/transport/middleware"
)

// Routes holds the handlers and middleware mounted by NewRouter. Metrics and
// RateLimit are optional.
type Routes struct {
	Health    *HealthHandler
	Matches   *MatchHandler
	Metrics   http.Handler
	Auth      middleware.Middleware
	RateLimit middleware.Middleware
}

// NewRouter mounts the probes, metrics and the authenticated API. Global
// middleware (request ID, logging, recovery, CORS) is applied by the caller.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	api := middleware.Chain(rt.Auth, rt.RateLimit)
	mux.Handle("GET /api/roommates/matches", api(http.HandlerFunc(rt.Matches.FindMatches)))

	return mux
}
