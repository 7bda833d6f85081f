package domain

import "github.com/google/uuid"

// Dimension identifies one scored attribute of roommate compatibility.
type Dimension string

const (
	DimensionBudget      Dimension = "budget"
	DimensionRoom        Dimension = "room"
	DimensionBathroom    Dimension = "bathroom"
	DimensionDietary     Dimension = "dietary"
	DimensionPets        Dimension = "pets"
	DimensionCleanliness Dimension = "cleanliness"
	DimensionSleep       Dimension = "sleep"
	DimensionGuests      Dimension = "guests"
	DimensionStudy       Dimension = "study"
)

// Dimensions lists every scored dimension in evaluation order. Deal-breakers
// are reported in this order.
var Dimensions = []Dimension{
	DimensionBudget,
	DimensionRoom,
	DimensionBathroom,
	DimensionDietary,
	DimensionPets,
	DimensionCleanliness,
	DimensionSleep,
	DimensionGuests,
	DimensionStudy,
}

func (d Dimension) String() string { return string(d) }

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionBudget, DimensionRoom, DimensionBathroom, DimensionDietary, DimensionPets,
		DimensionCleanliness, DimensionSleep, DimensionGuests, DimensionStudy:
		return true
	}
	return false
}

// MatchQuality is a coarse label for a compatibility score.
type MatchQuality string

const (
	MatchQualityExcellent MatchQuality = "excellent"
	MatchQualityGood      MatchQuality = "good"
	MatchQualityPoor      MatchQuality = "poor"
)

func (q MatchQuality) String() string { return string(q) }

// QualityThresholds are the lower bounds of the excellent and good labels.
type QualityThresholds struct {
	Excellent float64
	Good      float64
}

// DefaultQualityThresholds matches the labels shown by the web client.
var DefaultQualityThresholds = QualityThresholds{Excellent: 0.8, Good: 0.6}

// Label returns the quality label for score.
func (t QualityThresholds) Label(score float64) MatchQuality {
	switch {
	case score >= t.Excellent:
		return MatchQualityExcellent
	case score >= t.Good:
		return MatchQualityGood
	default:
		return MatchQualityPoor
	}
}

// ContactSummary is the public contact card of a profile owner.
type ContactSummary struct {
	OwnerID        uuid.UUID `json:"-"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phoneNumber"`
	WhatsAppNumber string    `json:"whatsappNumber"`
}

// MatchResult is one ranked candidate. It is built per request and never
// persisted.
type MatchResult struct {
	Candidate          *RoommateProfile
	Owner              ContactSummary
	CompatibilityScore float64
	Quality            MatchQuality
	DealBreakers       []string
	Breakdown          map[Dimension]float64
}
