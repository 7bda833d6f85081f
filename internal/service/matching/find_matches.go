package matching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/campusshare/roommate-backend/internal/domain"
	"github.com/campusshare/roommate-backend/internal/metrics"
)

// FindMatches scores every other active profile against the owner's active
// profile and returns the best matches, highest score first.
//
// Errors:
//   - *domain.ValidationError for bad input
//   - domain.ErrNoActiveProfile when the owner has no active profile
//   - domain.ErrInvalidProfile when the owner's profile is malformed
//   - domain.ErrRepositoryUnavailable when a read fails
//   - ctx.Err() when the context is cancelled
//
// Invalid candidate profiles are logged and skipped.
func (s *Service) FindMatches(ctx context.Context, input FindMatchesInput) (results []domain.MatchResult, err error) {
	start := time.Now()
	defer func() {
		metrics.MatchRequests.WithLabelValues(outcomeOf(err)).Inc()
		metrics.MatchDuration.Observe(time.Since(start).Seconds())
	}()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	scorer, err := s.scorerFor(input.Weights)
	if err != nil {
		return nil, err
	}
	limit := s.resolveLimit(input.Limit)

	// Both reads see the same snapshot of the profile table.
	var (
		requester *domain.RoommateProfile
		pool      []*domain.RoommateProfile
	)
	err = s.tx.RunReadOnly(ctx, func(ctx context.Context) error {
		p, err := s.profiles.GetActiveProfile(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrNoActiveProfile
			}
			return repoError(ctx, "get active profile", err)
		}
		requester = p

		pool, err = s.profiles.ListActiveProfiles(ctx, input.OwnerID)
		if err != nil {
			return repoError(ctx, "list active profiles", err)
		}
		return nil
	})
	if err != nil {
		if !isClassified(err) {
			err = repoError(ctx, "snapshot", err)
		}
		return nil, fmt.Errorf("matching.FindMatches: %w", err)
	}

	if !requester.IsActive() {
		return nil, fmt.Errorf("matching.FindMatches: %w", domain.ErrNoActiveProfile)
	}
	if err := requester.Validate(); err != nil {
		return nil, fmt.Errorf("matching.FindMatches: %w: %w", domain.ErrInvalidProfile, err)
	}

	metrics.CandidatePoolSize.Observe(float64(len(pool)))
	candidates := s.eligibleCandidates(ctx, requester, pool)

	scored, err := s.scoreAll(ctx, scorer, requester, candidates)
	if err != nil {
		return nil, err
	}
	metrics.CandidatesScored.Add(float64(len(scored)))

	ranked := Rank(scored, limit)

	if err := s.attachContacts(ctx, ranked); err != nil {
		return nil, fmt.Errorf("matching.FindMatches: %w", err)
	}

	s.log.DebugContext(ctx, "matches computed",
		slog.String("owner_id", input.OwnerID.String()),
		slog.Int("pool", len(pool)),
		slog.Int("scored", len(scored)),
		slog.Int("returned", len(ranked)),
		slog.Duration("elapsed", time.Since(start)))

	return ranked, nil
}

// eligibleCandidates drops the requester's own profiles, inactive profiles
// and profiles that fail validation. The input order is kept.
func (s *Service) eligibleCandidates(ctx context.Context, requester *domain.RoommateProfile, pool []*domain.RoommateProfile) []*domain.RoommateProfile {
	out := make([]*domain.RoommateProfile, 0, len(pool))
	for _, c := range pool {
		switch {
		case c == nil:
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipInvalid).Inc()
			continue
		case c.OwnerID == requester.OwnerID:
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipSelf).Inc()
			continue
		case !c.IsActive():
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipInactive).Inc()
			continue
		}

		if err := c.Validate(); err != nil {
			metrics.CandidatesSkipped.WithLabelValues(metrics.SkipInvalid).Inc()
			s.log.WarnContext(ctx, "skipping invalid candidate profile",
				slog.String("profile_id", c.ID.String()),
				slog.String("owner_id", c.OwnerID.String()),
				slog.String("error", fmt.Errorf("%w: %w", domain.ErrInvalidCandidateData, err).Error()))
			continue
		}
		out = append(out, c)
	}
	return out
}

// scoreAll scores each candidate into its own slot. Pools larger than the
// parallel threshold are spread over a bounded set of goroutines.
func (s *Service) scoreAll(ctx context.Context, scorer *Scorer, requester *domain.RoommateProfile, candidates []*domain.RoommateProfile) ([]domain.MatchResult, error) {
	results := make([]domain.MatchResult, len(candidates))

	if len(candidates) <= s.cfg.ParallelThreshold || s.cfg.Workers <= 1 {
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = s.match(scorer, requester, c)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.match(scorer, requester, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) match(scorer *Scorer, requester, candidate *domain.RoommateProfile) domain.MatchResult {
	c := scorer.Score(requester, candidate)
	return domain.MatchResult{
		Candidate:          candidate,
		Owner:              domain.ContactSummary{OwnerID: candidate.OwnerID},
		CompatibilityScore: c.Score,
		Quality:            s.thresholds.Label(c.Score),
		DealBreakers:       c.DealBreakers,
		Breakdown:          c.Breakdown,
	}
}

// attachContacts fills in owner contact cards for the returned page. Owners
// missing from the directory keep an empty card.
func (s *Service) attachContacts(ctx context.Context, results []domain.MatchResult) error {
	if len(results) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(results))
	seen := make(map[uuid.UUID]struct{}, len(results))
	for _, r := range results {
		if _, ok := seen[r.Candidate.OwnerID]; ok {
			continue
		}
		seen[r.Candidate.OwnerID] = struct{}{}
		ids = append(ids, r.Candidate.OwnerID)
	}

	contacts, err := s.contacts.GetContactSummaries(ctx, ids)
	if err != nil {
		return repoError(ctx, "get contact summaries", err)
	}

	for i := range results {
		ownerID := results[i].Candidate.OwnerID
		card, ok := contacts[ownerID]
		if !ok {
			s.log.DebugContext(ctx, "no contact card for candidate owner",
				slog.String("owner_id", ownerID.String()))
			continue
		}
		card.OwnerID = ownerID
		results[i].Owner = card
	}
	return nil
}

// repoError classifies a repository failure. Context errors pass through
// unchanged so callers can tell cancellation from an outage.
func repoError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrRepositoryUnavailable, op, err)
}

func isClassified(err error) bool {
	return errors.Is(err, domain.ErrNoActiveProfile) ||
		errors.Is(err, domain.ErrRepositoryUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrInvalidProfile):
		return metrics.OutcomeInvalidProfile
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalidInput
	case errors.Is(err, domain.ErrNoActiveProfile):
		return metrics.OutcomeNoActiveProfile
	case errors.Is(err, domain.ErrRepositoryUnavailable):
		return metrics.OutcomeRepositoryUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeError
	}
}
