package matching

import (
	"cmp"
	"slices"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// Rank orders results by descending score, then fewer deal-breakers, then
// most recently updated candidate. Remaining ties keep their input order.
// At most limit results are returned; limit <= 0 returns all of them.
// The input slice is not modified.
func Rank(results []domain.MatchResult, limit int) []domain.MatchResult {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, compareResults)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func compareResults(a, b domain.MatchResult) int {
	if c := cmp.Compare(b.CompatibilityScore, a.CompatibilityScore); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.DealBreakers), len(b.DealBreakers)); c != 0 {
		return c
	}
	return b.Candidate.UpdatedAt.Compare(a.Candidate.UpdatedAt)
}
