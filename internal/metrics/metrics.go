// Package metrics provides Prometheus instrumentation for the roommate
// matching service: request outcomes, latency, and candidate throughput.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for MatchRequests.
const (
	OutcomeOK                    = "ok"
	OutcomeNoActiveProfile       = "no_active_profile"
	OutcomeInvalidProfile        = "invalid_profile"
	OutcomeRepositoryUnavailable = "repository_unavailable"
	OutcomeInvalidInput          = "invalid_input"
	OutcomeCanceled              = "canceled"
	OutcomeError                 = "error"
)

// Reason labels for CandidatesSkipped.
const (
	SkipInvalid  = "invalid"
	SkipInactive = "inactive"
	SkipSelf     = "self"
)

var (
	// MatchRequests counts FindMatches calls, labeled by outcome.
	MatchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roommate_match_requests_total",
		Help: "Total number of roommate match requests",
	}, []string{"outcome"})

	// MatchDuration records end-to-end FindMatches latency in seconds.
	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roommate_match_duration_seconds",
		Help:    "Roommate match request latency in seconds",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	// CandidatesScored counts candidate profiles that were scored.
	CandidatesScored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roommate_candidates_scored_total",
		Help: "Total number of candidate profiles scored",
	})

	// CandidatesSkipped counts candidate profiles dropped before scoring,
	// labeled by reason.
	CandidatesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roommate_candidates_skipped_total",
		Help: "Total number of candidate profiles skipped before scoring",
	}, []string{"reason"})

	// CandidatePoolSize records how many candidates each request considered.
	CandidatePoolSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roommate_candidate_pool_size",
		Help:    "Number of active candidate profiles per match request",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func init() {
	prometheus.MustRegister(
		MatchRequests,
		MatchDuration,
		CandidatesScored,
		CandidatesSkipped,
		CandidatePoolSize,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
