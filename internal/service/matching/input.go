package matching

import (
	"github.com/google/uuid"

	"github.com/campusshare/roommate-backend/internal/domain"
)

// FindMatchesInput holds the parameters of a match query.
type FindMatchesInput struct {
	OwnerID uuid.UUID
	// Limit caps the number of results. 0 means the configured default;
	// values above the configured maximum are clamped.
	Limit int
	// Weights overrides the configured weight of individual dimensions.
	Weights Weights
}

// Validate checks all fields and collects all errors.
func (i FindMatchesInput) Validate() error {
	var errs []domain.FieldError

	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if err := i.Weights.Validate(); err != nil {
		if ve, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
