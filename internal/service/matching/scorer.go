package matching

import (
	"math"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// scorePrecision is the resolution scores are rounded to. Equal scores
// reached through different dimensions must compare equal.
const scorePrecision = 1e9

// Compatibility is the scored outcome of one profile pair.
type Compatibility struct {
	Score        float64
	DealBreakers []string
	Breakdown    map[domain.Dimension]float64
}

// Scorer aggregates the per-dimension sub-scores with a fixed set of weights.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer returns a Scorer for w rescaled to sum to 1. Dimensions missing
// from w get weight 0.
func NewScorer(w Weights) (*Scorer, error) {
	merged, err := Weights{}.Merge(w)
	if err != nil {
		return nil, err
	}
	return &Scorer{weights: merged}, nil
}

// Weights returns a copy of the weights in use.
func (s *Scorer) Weights() Weights {
	out := make(Weights, len(s.weights))
	for d, v := range s.weights {
		out[d] = v
	}
	return out
}

// Score computes the weighted aggregate for a and b, rounded to
// scorePrecision and clamped to [0,1], and
// collects every triggered deal-breaker. Deal-breakers do not change the
// aggregate beyond their own zero sub-score.
func (s *Scorer) Score(a, b *domain.RoommateProfile) Compatibility {
	c := Compatibility{
		DealBreakers: make([]string, 0, len(dealBreakerDimensions)),
		Breakdown:    make(map[domain.Dimension]float64, len(domain.Dimensions)),
	}

	var total float64
	for _, d := range domain.Dimensions {
		ds := dimensionScorers[d](a, b)
		c.Breakdown[d] = ds.Score
		total += s.weights[d] * ds.Score
		if ds.DealBreaker != "" {
			c.DealBreakers = append(c.DealBreakers, ds.DealBreaker)
		}
	}
	c.Score = clamp01(roundScore(total))

	return c
}

func roundScore(v float64) float64 {
	return math.Round(v*scorePrecision) / scorePrecision
}
