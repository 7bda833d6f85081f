package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with unique username, email and phone numbers.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:             uuid.New(),
		Username:       "student-" + suffix,
		Email:          "student-" + suffix + "@campus.example",
		Name:           "Student " + suffix,
		PhoneNumber:    "+1555" + suffix,
		WhatsAppNumber: "+1555" + suffix,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, name, phone_number, whatsapp_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.Name, user.PhoneNumber, user.WhatsAppNumber, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// ProfileOption customizes a seeded profile.
type ProfileOption func(p *domain.RoommateProfile)

// WithUpdatedAt sets both timestamps of the seeded profile.
func WithUpdatedAt(ts time.Time) ProfileOption {
	return func(p *domain.RoommateProfile) {
		p.CreatedAt = ts
		p.UpdatedAt = ts
	}
}

// WithStatus sets the profile status.
func WithStatus(s domain.ProfileStatus) ProfileOption {
	return func(p *domain.RoommateProfile) { p.Status = s }
}

// WithProfile applies an arbitrary change.
func WithProfile(fn func(p *domain.RoommateProfile)) ProfileOption {
	return ProfileOption(fn)
}

// SeedProfile inserts a valid active profile for ownerID. Values are written
// without validation so tests can store malformed rows.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, opts ...ProfileOption) domain.RoommateProfile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.RoommateProfile{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		Status:             domain.ProfileStatusActive,
		RoomPreference:     domain.RoomSingle,
		BathroomPreference: domain.BathroomShared,
		DietaryPreference:  domain.DietVegetarian,
		PetFriendly:        false,
		RentBudget:         domain.RentBudget{Min: 600, Max: 1000},
		AboutMe:            "Quiet engineering student looking for a tidy flat.",
		Lifestyle: domain.Lifestyle{
			CleanlinessLevel: 4,
			SleepSchedule:    domain.SleepEarlyBird,
			GuestFrequency:   domain.GuestsRarely,
			StudyEnvironment: domain.StudyQuiet,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&p)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO roommate_profiles (
			id, owner_id, status, room_preference, bathroom_preference, dietary_preference,
			cultural_preference, pet_friendly, rent_min, rent_max, about_me,
			cleanliness_level, sleep_schedule, guest_frequency, study_environment,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.ID, p.OwnerID, string(p.Status), string(p.RoomPreference), string(p.BathroomPreference), string(p.DietaryPreference),
		p.CulturalPreference, p.PetFriendly, p.RentBudget.Min, p.RentBudget.Max, p.AboutMe,
		p.Lifestyle.CleanlinessLevel, string(p.Lifestyle.SleepSchedule), string(p.Lifestyle.GuestFrequency), string(p.Lifestyle.StudyEnvironment),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}
