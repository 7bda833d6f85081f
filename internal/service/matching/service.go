package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/config"
	"github.com/campusshare/roommate-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// profileRepo is the read side of the roommate profile store.
type profileRepo interface {
	// GetActiveProfile returns domain.ErrNotFound when the owner has no
	// active profile.
	GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*domain.RoommateProfile, error)
	ListActiveProfiles(ctx context.Context, excludingOwnerID uuid.UUID) ([]*domain.RoommateProfile, error)
}

// contactDirectory resolves profile owners to their public contact cards.
// Owners without a user record are absent from the returned map.
type contactDirectory interface {
	GetContactSummaries(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.ContactSummary, error)
}

type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service computes ranked roommate matches for a profile owner.
type Service struct {
	log        *slog.Logger
	profiles   profileRepo
	contacts   contactDirectory
	tx         txManager
	cfg        config.MatchingConfig
	scorer     *Scorer
	thresholds domain.QualityThresholds
}

// NewService creates a matching service calibrated by cfg. It fails when the
// configured weights cannot form a valid scorer.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	contacts contactDirectory,
	tx txManager,
	cfg config.MatchingConfig,
) (*Service, error) {
	scorer, err := NewScorer(WeightsFromConfig(cfg.Weights))
	if err != nil {
		return nil, fmt.Errorf("matching.NewService: %w", err)
	}

	return &Service{
		log:      logger.With("service", "matching"),
		profiles: profiles,
		contacts: contacts,
		tx:       tx,
		cfg:      cfg,
		scorer:   scorer,
		thresholds: domain.QualityThresholds{
			Excellent: cfg.ExcellentThreshold,
			Good:      cfg.GoodThreshold,
		},
	}, nil
}

// WeightsFromConfig converts the configured weight table.
func WeightsFromConfig(c config.WeightsConfig) Weights {
	return Weights{
		domain.DimensionBudget:      c.Budget,
		domain.DimensionRoom:        c.Room,
		domain.DimensionBathroom:    c.Bathroom,
		domain.DimensionDietary:     c.Dietary,
		domain.DimensionPets:        c.Pets,
		domain.DimensionCleanliness: c.Cleanliness,
		domain.DimensionSleep:       c.Sleep,
		domain.DimensionGuests:      c.Guests,
		domain.DimensionStudy:       c.Study,
	}
}

// resolveLimit maps a requested page size onto the configured bounds.
func (s *Service) resolveLimit(limit int) int {
	switch {
	case limit == 0:
		return s.cfg.DefaultLimit
	case limit > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	default:
		return limit
	}
}

// scorerFor returns the default scorer, or one with overrides merged on top
// of the configured weights.
func (s *Service) scorerFor(overrides Weights) (*Scorer, error) {
	if len(overrides) == 0 {
		return s.scorer, nil
	}
	merged, err := s.scorer.Weights().Merge(overrides)
	if err != nil {
		return nil, err
	}
	return &Scorer{weights: merged}, nil
}
