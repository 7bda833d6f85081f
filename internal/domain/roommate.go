package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cleanliness bounds for Lifestyle.CleanlinessLevel.
const (
	MinCleanlinessLevel = 1
	MaxCleanlinessLevel = 5
)

// RentBudget is the monthly rent range a user is willing to pay, in whole
// currency units. Valid budgets have 0 < Min < Max.
type RentBudget struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Lifestyle holds the questionnaire answers used for closeness scoring.
type Lifestyle struct {
	CleanlinessLevel int              `json:"cleanlinessLevel"`
	SleepSchedule    SleepSchedule    `json:"sleepSchedule"`
	GuestFrequency   GuestFrequency   `json:"guestFrequency"`
	StudyEnvironment StudyEnvironment `json:"studyEnvironment"`
}

// RoommateProfile is a user's housing-preference profile. At most one
// active profile exists per owner.
type RoommateProfile struct {
	ID                 uuid.UUID          `json:"id"`
	OwnerID            uuid.UUID          `json:"ownerId"`
	Status             ProfileStatus      `json:"status"`
	RoomPreference     RoomPreference     `json:"roomPreference"`
	BathroomPreference BathroomPreference `json:"bathroomPreference"`
	DietaryPreference  DietaryPreference  `json:"dietaryPreference"`
	CulturalPreference *string            `json:"culturalPreference,omitempty"`
	PetFriendly        bool               `json:"petFriendly"`
	RentBudget         RentBudget         `json:"rentBudget"`
	AboutMe            string             `json:"aboutMe"`
	Lifestyle          Lifestyle          `json:"lifestyle"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// IsActive reports whether the profile participates in matching.
func (p *RoommateProfile) IsActive() bool {
	return p.Status == ProfileStatusActive
}

// Validate checks the invariants every scored profile must satisfy and
// collects all violations. Display-only fields are not checked.
func (p *RoommateProfile) Validate() error {
	var errs []FieldError

	if p.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if p.OwnerID == uuid.Nil {
		errs = append(errs, FieldError{Field: "ownerId", Message: "required"})
	}
	if !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown value"})
	}
	if !p.RoomPreference.IsValid() {
		errs = append(errs, FieldError{Field: "roomPreference", Message: "unknown value"})
	}
	if !p.BathroomPreference.IsValid() {
		errs = append(errs, FieldError{Field: "bathroomPreference", Message: "unknown value"})
	}
	if !p.DietaryPreference.IsValid() {
		errs = append(errs, FieldError{Field: "dietaryPreference", Message: "unknown value"})
	}
	if p.RentBudget.Min <= 0 || p.RentBudget.Max <= 0 {
		errs = append(errs, FieldError{Field: "rentBudget", Message: "min and max must be positive"})
	}
	if p.RentBudget.Min >= p.RentBudget.Max {
		errs = append(errs, FieldError{Field: "rentBudget", Message: "min must be less than max"})
	}
	if p.Lifestyle.CleanlinessLevel < MinCleanlinessLevel || p.Lifestyle.CleanlinessLevel > MaxCleanlinessLevel {
		errs = append(errs, FieldError{Field: "lifestyle.cleanlinessLevel", Message: "must be between 1 and 5"})
	}
	if !p.Lifestyle.SleepSchedule.IsValid() {
		errs = append(errs, FieldError{Field: "lifestyle.sleepSchedule", Message: "unknown value"})
	}
	if !p.Lifestyle.GuestFrequency.IsValid() {
		errs = append(errs, FieldError{Field: "lifestyle.guestFrequency", Message: "unknown value"})
	}
	if !p.Lifestyle.StudyEnvironment.IsValid() {
		errs = append(errs, FieldError{Field: "lifestyle.studyEnvironment", Message: "unknown value"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
