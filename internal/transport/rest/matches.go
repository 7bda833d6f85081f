package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/campusshare/roommate-backend/internal/domain"
	"github.com/campusshare/roommate-backend/internal/service/matching"
	"github.com/campusshare/roommate-backend/pkg/ctxutil"
)

// weightParamPrefix marks per-request weight overrides, e.g. weight.budget=0.5.
const weightParamPrefix = "weight."

type matcher interface {
	FindMatches(ctx context.Context, input matching.FindMatchesInput) ([]domain.MatchResult, error)
}

// MatchHandler serves roommate match queries for the authenticated user.
type MatchHandler struct {
	svc matcher
	log *slog.Logger
}

// NewMatchHandler creates a MatchHandler.
func NewMatchHandler(svc matcher, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{svc: svc, log: logger.With("handler", "matches")}
}

type matchesResponse struct {
	Matches []matchDTO `json:"matches"`
}

type matchDTO struct {
	CandidateProfile   *domain.RoommateProfile      `json:"candidateProfile"`
	Owner              domain.ContactSummary        `json:"owner"`
	CompatibilityScore float64                      `json:"compatibilityScore"`
	Quality            domain.MatchQuality          `json:"quality"`
	DealBreakers       []string                     `json:"dealBreakers"`
	Breakdown          map[domain.Dimension]float64 `json:"breakdown"`
}

// FindMatches handles GET /api/roommates/matches.
func (h *MatchHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "")
		return
	}

	input, err := parseMatchQuery(r.URL.Query())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	input.OwnerID = ownerID

	results, err := h.svc.FindMatches(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := matchesResponse{Matches: make([]matchDTO, len(results))}
	for i, m := range results {
		resp.Matches[i] = toMatchDTO(m)
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseMatchQuery reads limit and weight overrides. Unrelated parameters are
// ignored; values that do not parse are reported together.
func parseMatchQuery(q url.Values) (matching.FindMatchesInput, error) {
	var (
		input matching.FindMatchesInput
		errs  []domain.FieldError
	)

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = limit
	}

	for key, values := range q {
		name, found := strings.CutPrefix(key, weightParamPrefix)
		if !found || len(values) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(values[len(values)-1], 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "weights." + name, Message: "must be a number"})
			continue
		}
		if input.Weights == nil {
			input.Weights = make(matching.Weights)
		}
		input.Weights[domain.Dimension(name)] = v
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

func toMatchDTO(m domain.MatchResult) matchDTO {
	dealBreakers := m.DealBreakers
	if dealBreakers == nil {
		dealBreakers = []string{}
	}
	return matchDTO{
		CandidateProfile:   m.Candidate,
		Owner:              m.Owner,
		CompatibilityScore: m.CompatibilityScore,
		Quality:            m.Quality,
		DealBreakers:       dealBreakers,
		Breakdown:          m.Breakdown,
	}
}

// handleError maps service errors to responses. ErrInvalidProfile wraps a
// ValidationError, so it is checked first.
func (h *MatchHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidProfile):
		writeError(w, http.StatusUnprocessableEntity, codeInvalidProfile, "your roommate profile is incomplete or invalid")
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, domain.ErrNoActiveProfile):
		writeError(w, http.StatusNotFound, codeNoActiveProfile, "create an active roommate profile to see matches")
	case errors.Is(err, domain.ErrRepositoryUnavailable):
		h.log.ErrorContext(r.Context(), "profile repository unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, codeRepositoryUnavailable, "")
	case errors.Is(err, context.Canceled):
		// The client went away; nobody reads this response.
		h.log.DebugContext(r.Context(), "match request canceled")
		writeError(w, statusClientClosedRequest, codeInternal, "")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, codeRepositoryUnavailable, "")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "")
	}
}

// statusClientClosedRequest is the nginx convention for a client disconnect.
const statusClientClosedRequest = 499
