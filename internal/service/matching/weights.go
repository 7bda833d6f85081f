package matching

import (
	"fmt"
	"math"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// Weights maps each dimension to its share of the aggregate score.
type Weights map[domain.Dimension]float64

// DefaultWeights returns the stock calibration. The values sum to 1.
func DefaultWeights() Weights {
	return Weights{
		domain.DimensionBudget:      0.25,
		domain.DimensionRoom:        0.10,
		domain.DimensionBathroom:    0.05,
		domain.DimensionDietary:     0.15,
		domain.DimensionPets:        0.10,
		domain.DimensionCleanliness: 0.10,
		domain.DimensionSleep:       0.10,
		domain.DimensionGuests:      0.10,
		domain.DimensionStudy:       0.05,
	}
}

// sumTolerance is how far a weight total may drift from 1 before it is rescaled.
const sumTolerance = 1e-9

// Validate checks that every key is a known dimension and every value is a
// finite non-negative number. Missing dimensions are allowed.
func (w Weights) Validate() error {
	var errs []domain.FieldError
	for d, v := range w {
		field := "weights." + d.String()
		if !d.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: "unknown dimension"})
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a non-negative number"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Merge returns a copy of w with overrides applied on top. The result is
// rescaled to sum to 1 so the aggregate stays in [0,1].
func (w Weights) Merge(overrides Weights) (Weights, error) {
	if err := overrides.Validate(); err != nil {
		return nil, err
	}

	merged := make(Weights, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		merged[d] = w[d]
	}
	for d, v := range overrides {
		merged[d] = v
	}

	return merged.normalized()
}

func (w Weights) normalized() (Weights, error) {
	var sum float64
	for _, d := range domain.Dimensions {
		sum += w[d]
	}
	if sum <= 0 {
		return nil, domain.NewValidationError("weights", "at least one weight must be positive")
	}
	if math.IsInf(sum, 0) {
		return nil, domain.NewValidationError("weights", "total must be finite")
	}
	if math.Abs(sum-1) <= sumTolerance {
		return w, nil
	}

	out := make(Weights, len(w))
	for _, d := range domain.Dimensions {
		out[d] = w[d] / sum
	}
	return out, nil
}

func (w Weights) String() string {
	return fmt.Sprintf("budget=%.3f room=%.3f bathroom=%.3f dietary=%.3f pets=%.3f cleanliness=%.3f sleep=%.3f guests=%.3f study=%.3f",
		w[domain.DimensionBudget], w[domain.DimensionRoom], w[domain.DimensionBathroom],
		w[domain.DimensionDietary], w[domain.DimensionPets], w[domain.DimensionCleanliness],
		w[domain.DimensionSleep], w[domain.DimensionGuests], w[domain.DimensionStudy])
}
