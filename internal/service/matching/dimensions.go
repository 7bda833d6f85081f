package matching

import (
	"github.com/campusshare/roommate-backend/internal/domain"
)

// dimensionScore is the outcome of one dimension for a profile pair.
// DealBreaker is empty unless the pair hits a hard mismatch.
type dimensionScore struct {
	Score       float64
	DealBreaker string
}

type dimensionScorer func(a, b *domain.RoommateProfile) dimensionScore

// dimensionScorers holds one pure, symmetric scorer per dimension.
var dimensionScorers = map[domain.Dimension]dimensionScorer{
	domain.DimensionBudget:      scoreBudget,
	domain.DimensionRoom:        scoreRoom,
	domain.DimensionBathroom:    scoreBathroom,
	domain.DimensionDietary:     scoreDietary,
	domain.DimensionPets:        scorePets,
	domain.DimensionCleanliness: scoreCleanliness,
	domain.DimensionSleep:       scoreSleep,
	domain.DimensionGuests:      scoreGuests,
	domain.DimensionStudy:       scoreStudy,
}

// petMismatchScore is the soft penalty for differing pet attitudes. The
// profile records willingness, not ownership, so it is never a deal-breaker.
const petMismatchScore = 0.4

// scoreBudget is the overlap-over-union ratio of the two rent ranges.
func scoreBudget(a, b *domain.RoommateProfile) dimensionScore {
	ra, rb := a.RentBudget, b.RentBudget

	overlap := max(0, min(ra.Max, rb.Max)-max(ra.Min, rb.Min))
	union := max(ra.Max, rb.Max) - min(ra.Min, rb.Min)

	if union <= 0 {
		// identical single-point ranges
		return dimensionScore{Score: 1}
	}
	if overlap == 0 {
		return dimensionScore{Score: 0, DealBreaker: DealBreakerBudget}
	}
	return dimensionScore{Score: float64(overlap) / float64(union)}
}

func scoreRoom(a, b *domain.RoommateProfile) dimensionScore {
	return equalOrFlexible(a.RoomPreference, b.RoomPreference)
}

func scoreBathroom(a, b *domain.RoommateProfile) dimensionScore {
	return equalOrFlexible(a.BathroomPreference, b.BathroomPreference)
}

func scoreDietary(a, b *domain.RoommateProfile) dimensionScore {
	da, db := a.DietaryPreference, b.DietaryPreference
	switch {
	case da == db || da.IsFlexible() || db.IsFlexible():
		return dimensionScore{Score: 1}
	case dietaryConflict(da, db):
		return dimensionScore{Score: 0, DealBreaker: DealBreakerDietary}
	default:
		return dimensionScore{Score: 0.5}
	}
}

func scorePets(a, b *domain.RoommateProfile) dimensionScore {
	if a.PetFriendly == b.PetFriendly {
		return dimensionScore{Score: 1}
	}
	return dimensionScore{Score: petMismatchScore}
}

func scoreCleanliness(a, b *domain.RoommateProfile) dimensionScore {
	diff := abs(a.Lifestyle.CleanlinessLevel - b.Lifestyle.CleanlinessLevel)
	span := domain.MaxCleanlinessLevel - domain.MinCleanlinessLevel
	return dimensionScore{Score: clamp01(1 - float64(diff)/float64(span))}
}

func scoreSleep(a, b *domain.RoommateProfile) dimensionScore {
	return equalOrFlexible(a.Lifestyle.SleepSchedule, b.Lifestyle.SleepSchedule)
}

func scoreGuests(a, b *domain.RoommateProfile) dimensionScore {
	return ordinalCloseness(a.Lifestyle.GuestFrequency, b.Lifestyle.GuestFrequency)
}

func scoreStudy(a, b *domain.RoommateProfile) dimensionScore {
	return ordinalCloseness(a.Lifestyle.StudyEnvironment, b.Lifestyle.StudyEnvironment)
}

type flexibleEnum interface {
	comparable
	IsFlexible() bool
}

// equalOrFlexible scores 1 when the values agree or either side does not mind.
func equalOrFlexible[T flexibleEnum](a, b T) dimensionScore {
	if a == b || a.IsFlexible() || b.IsFlexible() {
		return dimensionScore{Score: 1}
	}
	return dimensionScore{Score: 0}
}

type ordinalEnum interface {
	Ordinal() (int, bool)
}

// ordinalLevels is the number of steps on the three-level ordinal scales.
const ordinalLevels = 2

// ordinalCloseness scores 1 - |diff|/2 on a three-level scale. Unknown values
// score 0; validated profiles never carry them.
func ordinalCloseness[T ordinalEnum](a, b T) dimensionScore {
	oa, okA := a.Ordinal()
	ob, okB := b.Ordinal()
	if !okA || !okB {
		return dimensionScore{Score: 0}
	}
	return dimensionScore{Score: 1 - float64(abs(oa-ob))/ordinalLevels}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clamp01(v float64) float64 {
	return min(1, max(0, v))
}
