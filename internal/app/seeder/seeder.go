// Package seeder loads demo users and roommate profiles into the database
// for local development and demos.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/domain"
)

type userCreator interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type profileCreator interface {
	Create(ctx context.Context, p *domain.RoommateProfile) (*domain.RoommateProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result counts what a run did with each fixture user.
type Result struct {
	Users    int
	Profiles int
	Skipped  int
	Invalid  int
	Duration time.Duration
}

// Seeder inserts fixture users, each with its profile in one transaction.
type Seeder struct {
	log      *slog.Logger
	users    userCreator
	profiles profileCreator
	tx       txManager
	cfg      Config
}

// New creates a Seeder.
func New(log *slog.Logger, users userCreator, profiles profileCreator, tx txManager, cfg Config) *Seeder {
	return &Seeder{
		log:      log.With("component", "seeder"),
		users:    users,
		profiles: profiles,
		tx:       tx,
		cfg:      cfg,
	}
}

// Run seeds every fixture user. Invalid fixtures and users that already
// exist are counted and skipped; any other failure stops the run.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	for i, fu := range s.cfg.Users {
		log := s.log.With(slog.Int("index", i), slog.String("username", fu.Username))

		user, profile, err := fu.build()
		if err != nil {
			res.Invalid++
			log.Warn("invalid fixture", slog.String("error", err.Error()))
			continue
		}

		if s.cfg.DryRun {
			res.Users++
			if profile != nil {
				res.Profiles++
			}
			continue
		}

		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			created, err := s.users.Create(ctx, user)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			if profile == nil {
				return nil
			}
			profile.OwnerID = created.ID
			if _, err := s.profiles.Create(ctx, profile); err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			return nil
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			res.Skipped++
			log.Info("fixture already seeded")
		case err != nil:
			res.Duration = time.Since(start)
			return res, fmt.Errorf("seeder.Run: %s: %w", fu.Username, err)
		default:
			res.Users++
			if profile != nil {
				res.Profiles++
			}
		}
	}

	res.Duration = time.Since(start)
	s.log.Info("seeding finished",
		slog.Bool("dry_run", s.cfg.DryRun),
		slog.Int("users", res.Users),
		slog.Int("profiles", res.Profiles),
		slog.Int("skipped", res.Skipped),
		slog.Int("invalid", res.Invalid),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// build converts a fixture into domain values and validates the profile.
func (fu FixtureUser) build() (*domain.User, *domain.RoommateProfile, error) {
	var errs []domain.FieldError
	if fu.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if fu.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, nil, domain.NewValidationErrors(errs)
	}

	user := &domain.User{
		ID:             uuid.New(),
		Username:       fu.Username,
		Email:          fu.Email,
		Name:           fu.Name,
		PhoneNumber:    fu.PhoneNumber,
		WhatsAppNumber: fu.WhatsAppNumber,
	}
	if fu.Profile == nil {
		return user, nil, nil
	}

	fp := fu.Profile
	profile := &domain.RoommateProfile{
		ID:                 uuid.New(),
		OwnerID:            user.ID,
		Status:             domain.ProfileStatusActive,
		RoomPreference:     domain.RoomPreference(fp.RoomPreference),
		BathroomPreference: domain.BathroomPreference(fp.BathroomPreference),
		DietaryPreference:  domain.DietaryPreference(fp.DietaryPreference),
		CulturalPreference: fp.CulturalPreference,
		PetFriendly:        fp.PetFriendly,
		RentBudget:         domain.RentBudget{Min: fp.RentMin, Max: fp.RentMax},
		AboutMe:            fp.AboutMe,
		Lifestyle: domain.Lifestyle{
			CleanlinessLevel: fp.CleanlinessLevel,
			SleepSchedule:    domain.SleepSchedule(fp.SleepSchedule),
			GuestFrequency:   domain.GuestFrequency(fp.GuestFrequency),
			StudyEnvironment: domain.StudyEnvironment(fp.StudyEnvironment),
		},
	}
	if err := profile.Validate(); err != nil {
		return nil, nil, fmt.Errorf("profile: %w", err)
	}
	return user, profile, nil
}
