// Package roommate implements the roommate profile repository using PostgreSQL.
package roommate

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/campusshare/roommate-backend/internal/adapter/postgres"
	"github.com/campusshare/roommate-backend/internal/domain"
)

const table = "roommate_profiles"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// columns is the scan order of scanProfile.
var columns = []string{
	"id",
	"owner_id",
	"status",
	"room_preference",
	"bathroom_preference",
	"dietary_preference",
	"cultural_preference",
	"pet_friendly",
	"rent_min",
	"rent_max",
	"about_me",
	"cleanliness_level",
	"sleep_schedule",
	"guest_frequency",
	"study_environment",
	"created_at",
	"updated_at",
}

// Repo provides roommate profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new roommate profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetActiveProfile returns the owner's active profile, or domain.ErrNotFound.
func (r *Repo) GetActiveProfile(ctx context.Context, ownerID uuid.UUID) (*domain.RoommateProfile, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Expr("owner_id = ?", ownerID)).
		Where(squirrel.Eq{"status": domain.ProfileStatusActive.String()}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get active profile query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	p, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "active roommate_profile of owner", ownerID)
	}
	return p, nil
}

// ListActiveProfiles returns every active profile not owned by
// excludingOwnerID, most recently updated first. Stored values are returned
// as-is; callers validate them.
func (r *Repo) ListActiveProfiles(ctx context.Context, excludingOwnerID uuid.UUID) ([]*domain.RoommateProfile, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": domain.ProfileStatusActive.String()}).
		Where(squirrel.Expr("owner_id <> ?", excludingOwnerID)).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active profiles query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "active roommate_profiles excluding owner", excludingOwnerID)
	}
	defer rows.Close()

	var profiles []*domain.RoommateProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, postgres.MapError(err, "active roommate_profiles excluding owner", excludingOwnerID)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "active roommate_profiles excluding owner", excludingOwnerID)
	}

	return profiles, nil
}

// Create inserts a profile and returns it as stored. A second active profile
// for the same owner fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.RoommateProfile) (*domain.RoommateProfile, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := psql.Insert(table).
		Columns(columns[:len(columns)-2]...).
		Values(
			id,
			p.OwnerID,
			p.Status.String(),
			p.RoomPreference.String(),
			p.BathroomPreference.String(),
			p.DietaryPreference.String(),
			p.CulturalPreference,
			p.PetFriendly,
			p.RentBudget.Min,
			p.RentBudget.Max,
			p.AboutMe,
			p.Lifestyle.CleanlinessLevel,
			p.Lifestyle.SleepSchedule.String(),
			p.Lifestyle.GuestFrequency.String(),
			p.Lifestyle.StudyEnvironment.String(),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create profile query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanProfile(row)
	if err != nil {
		return nil, postgres.MapError(err, "roommate_profile", id)
	}
	return created, nil
}

// Cancel marks a profile cancelled so it no longer takes part in matching.
func (r *Repo) Cancel(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Update(table).
		Set("status", domain.ProfileStatusCancelled.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Expr("id = ?", id)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cancel profile query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "roommate_profile", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "roommate_profile", id)
	}
	return nil
}

// scanProfile reads one row in columns order. Enum columns are taken
// verbatim so an unknown stored value surfaces in Validate, not here.
func scanProfile(row pgx.Row) (*domain.RoommateProfile, error) {
	var (
		p                            domain.RoommateProfile
		status, room, bathroom, diet string
		sleep, guests, study         string
		cleanliness                  int16
	)

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&status,
		&room,
		&bathroom,
		&diet,
		&p.CulturalPreference,
		&p.PetFriendly,
		&p.RentBudget.Min,
		&p.RentBudget.Max,
		&p.AboutMe,
		&cleanliness,
		&sleep,
		&guests,
		&study,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = domain.ProfileStatus(status)
	p.RoomPreference = domain.RoomPreference(room)
	p.BathroomPreference = domain.BathroomPreference(bathroom)
	p.DietaryPreference = domain.DietaryPreference(diet)
	p.Lifestyle = domain.Lifestyle{
		CleanlinessLevel: int(cleanliness),
		SleepSchedule:    domain.SleepSchedule(sleep),
		GuestFrequency:   domain.GuestFrequency(guests),
		StudyEnvironment: domain.StudyEnvironment(study),
	}

	return &p, nil
}
