package domain

import "fmt"

// ProfileStatus is the lifecycle state of a roommate profile.
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusCancelled ProfileStatus = "cancelled"
)

func (s ProfileStatus) String() string { return string(s) }

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusCancelled:
		return true
	}
	return false
}

func (s *ProfileStatus) UnmarshalText(text []byte) error {
	return parseInto(s, "status", text, ProfileStatus.IsValid)
}

// RoomPreference is the kind of bedroom a user is looking for.
type RoomPreference string

const (
	RoomSingle   RoomPreference = "single"
	RoomShared   RoomPreference = "shared"
	RoomFlexible RoomPreference = "flexible"
)

func (p RoomPreference) String() string   { return string(p) }
func (p RoomPreference) IsFlexible() bool { return p == RoomFlexible }

func (p RoomPreference) IsValid() bool {
	switch p {
	case RoomSingle, RoomShared, RoomFlexible:
		return true
	}
	return false
}

func (p *RoomPreference) UnmarshalText(text []byte) error {
	return parseInto(p, "roomPreference", text, RoomPreference.IsValid)
}

// BathroomPreference is whether a user wants a private bathroom.
type BathroomPreference string

const (
	BathroomOwn      BathroomPreference = "own"
	BathroomShared   BathroomPreference = "shared"
	BathroomFlexible BathroomPreference = "flexible"
)

func (p BathroomPreference) String() string   { return string(p) }
func (p BathroomPreference) IsFlexible() bool { return p == BathroomFlexible }

func (p BathroomPreference) IsValid() bool {
	switch p {
	case BathroomOwn, BathroomShared, BathroomFlexible:
		return true
	}
	return false
}

func (p *BathroomPreference) UnmarshalText(text []byte) error {
	return parseInto(p, "bathroomPreference", text, BathroomPreference.IsValid)
}

// DietaryPreference is the food habit a user keeps at home.
type DietaryPreference string

const (
	DietVegetarian    DietaryPreference = "vegetarian"
	DietEggetarian    DietaryPreference = "eggetarian"
	DietNonVegetarian DietaryPreference = "non-vegetarian"
	DietFlexible      DietaryPreference = "flexible"
)

func (p DietaryPreference) String() string   { return string(p) }
func (p DietaryPreference) IsFlexible() bool { return p == DietFlexible }

func (p DietaryPreference) IsValid() bool {
	switch p {
	case DietVegetarian, DietEggetarian, DietNonVegetarian, DietFlexible:
		return true
	}
	return false
}

func (p *DietaryPreference) UnmarshalText(text []byte) error {
	return parseInto(p, "dietaryPreference", text, DietaryPreference.IsValid)
}

// SleepSchedule is when a user is usually awake.
type SleepSchedule string

const (
	SleepEarlyBird SleepSchedule = "early_bird"
	SleepNightOwl  SleepSchedule = "night_owl"
	SleepFlexible  SleepSchedule = "flexible"
)

func (s SleepSchedule) String() string   { return string(s) }
func (s SleepSchedule) IsFlexible() bool { return s == SleepFlexible }

func (s SleepSchedule) IsValid() bool {
	switch s {
	case SleepEarlyBird, SleepNightOwl, SleepFlexible:
		return true
	}
	return false
}

func (s *SleepSchedule) UnmarshalText(text []byte) error {
	return parseInto(s, "sleepSchedule", text, SleepSchedule.IsValid)
}

// GuestFrequency is how often a user has visitors over.
type GuestFrequency string

const (
	GuestsRarely    GuestFrequency = "rarely"
	GuestsSometimes GuestFrequency = "sometimes"
	GuestsOften     GuestFrequency = "often"
)

func (g GuestFrequency) String() string { return string(g) }

func (g GuestFrequency) IsValid() bool {
	_, ok := g.Ordinal()
	return ok
}

// Ordinal maps the frequency onto 0..2. ok is false for unknown values.
func (g GuestFrequency) Ordinal() (int, bool) {
	switch g {
	case GuestsRarely:
		return 0, true
	case GuestsSometimes:
		return 1, true
	case GuestsOften:
		return 2, true
	}
	return 0, false
}

func (g *GuestFrequency) UnmarshalText(text []byte) error {
	return parseInto(g, "guestFrequency", text, GuestFrequency.IsValid)
}

// StudyEnvironment is the noise level a user prefers while studying.
type StudyEnvironment string

const (
	StudyQuiet    StudyEnvironment = "quiet"
	StudyModerate StudyEnvironment = "moderate"
	StudyNoisy    StudyEnvironment = "noisy"
)

func (s StudyEnvironment) String() string { return string(s) }

func (s StudyEnvironment) IsValid() bool {
	_, ok := s.Ordinal()
	return ok
}

// Ordinal maps the environment onto 0..2. ok is false for unknown values.
func (s StudyEnvironment) Ordinal() (int, bool) {
	switch s {
	case StudyQuiet:
		return 0, true
	case StudyModerate:
		return 1, true
	case StudyNoisy:
		return 2, true
	}
	return 0, false
}

func (s *StudyEnvironment) UnmarshalText(text []byte) error {
	return parseInto(s, "studyEnvironment", text, StudyEnvironment.IsValid)
}

// parseInto assigns text to dst if valid accepts it, otherwise returns a
// ValidationError naming field.
func parseInto[T ~string](dst *T, field string, text []byte, valid func(T) bool) error {
	v := T(text)
	if !valid(v) {
		return NewValidationError(field, fmt.Sprintf("unknown value %q", string(text)))
	}
	*dst = v
	return nil
}
