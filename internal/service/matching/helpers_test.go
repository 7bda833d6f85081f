package matching

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/domain"
)

const epsilon = 1e-4

func approx(a, b float64) bool { return math.Abs(a-b) < epsilon }

// baseProfile returns a valid active profile. Two calls differ only in
// identifiers.
func baseProfile() *domain.RoommateProfile {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &domain.RoommateProfile{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		Status:             domain.ProfileStatusActive,
		RoomPreference:     domain.RoomSingle,
		BathroomPreference: domain.BathroomOwn,
		DietaryPreference:  domain.DietVegetarian,
		PetFriendly:        true,
		RentBudget:         domain.RentBudget{Min: 600, Max: 1000},
		AboutMe:            "Second-year architecture student, early riser.",
		Lifestyle: domain.Lifestyle{
			CleanlinessLevel: 4,
			SleepSchedule:    domain.SleepEarlyBird,
			GuestFrequency:   domain.GuestsSometimes,
			StudyEnvironment: domain.StudyModerate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func withProfile(mutate func(p *domain.RoommateProfile)) *domain.RoommateProfile {
	p := baseProfile()
	mutate(p)
	return p
}

// randomProfile draws a valid profile from r.
func randomProfile(r *rand.Rand) *domain.RoommateProfile {
	pick := func(n int) int { return r.IntN(n) }

	rooms := []domain.RoomPreference{domain.RoomSingle, domain.RoomShared, domain.RoomFlexible}
	baths := []domain.BathroomPreference{domain.BathroomOwn, domain.BathroomShared, domain.BathroomFlexible}
	diets := []domain.DietaryPreference{domain.DietVegetarian, domain.DietEggetarian, domain.DietNonVegetarian, domain.DietFlexible}
	sleeps := []domain.SleepSchedule{domain.SleepEarlyBird, domain.SleepNightOwl, domain.SleepFlexible}
	guests := []domain.GuestFrequency{domain.GuestsRarely, domain.GuestsSometimes, domain.GuestsOften}
	studies := []domain.StudyEnvironment{domain.StudyQuiet, domain.StudyModerate, domain.StudyNoisy}

	lo := 300 + pick(2500)
	hi := lo + 1 + pick(3000-lo+200)

	p := baseProfile()
	p.RoomPreference = rooms[pick(len(rooms))]
	p.BathroomPreference = baths[pick(len(baths))]
	p.DietaryPreference = diets[pick(len(diets))]
	p.PetFriendly = pick(2) == 1
	p.RentBudget = domain.RentBudget{Min: lo, Max: hi}
	p.Lifestyle = domain.Lifestyle{
		CleanlinessLevel: domain.MinCleanlinessLevel + pick(domain.MaxCleanlinessLevel),
		SleepSchedule:    sleeps[pick(len(sleeps))],
		GuestFrequency:   guests[pick(len(guests))],
		StudyEnvironment: studies[pick(len(studies))],
	}
	return p
}
