package matching

import "github.com/campusshare/roommate-backend/internal/domain"

// Deal-breaker labels shown next to a candidate. They flag a hard mismatch on
// one dimension but never remove the candidate from the results.
const (
	DealBreakerBudget  = "No overlapping budget range"
	DealBreakerDietary = "Dietary incompatibility"
)

// dealBreakerDimensions are the only dimensions whose scorers can emit a label.
var dealBreakerDimensions = []domain.Dimension{
	domain.DimensionBudget,
	domain.DimensionDietary,
}

// dietaryConflict reports the one diet pairing treated as a hard mismatch.
func dietaryConflict(a, b domain.DietaryPreference) bool {
	return (a == domain.DietVegetarian && b == domain.DietNonVegetarian) ||
		(a == domain.DietNonVegetarian && b == domain.DietVegetarian)
}

// DealBreakers evaluates only the deal-breaker rules for a pair and returns
// the triggered labels in dimension order. The result is never nil.
func DealBreakers(a, b *domain.RoommateProfile) []string {
	labels := make([]string, 0, len(dealBreakerDimensions))
	for _, d := range dealBreakerDimensions {
		if l := dimensionScorers[d](a, b).DealBreaker; l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}
