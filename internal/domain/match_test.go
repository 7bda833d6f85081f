package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestQualityThresholds_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  MatchQuality
	}{
		{1.0, MatchQualityExcellent},
		{0.8, MatchQualityExcellent},
		{0.7999, MatchQualityGood},
		{0.6, MatchQualityGood},
		{0.5999, MatchQualityPoor},
		{0, MatchQualityPoor},
	}
	for _, tt := range tests {
		if got := DefaultQualityThresholds.Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestDimensions_AllValid(t *testing.T) {
	t.Parallel()

	if len(Dimensions) != 9 {
		t.Fatalf("expected 9 dimensions, got %d", len(Dimensions))
	}
	seen := make(map[Dimension]bool)
	for _, d := range Dimensions {
		if !d.IsValid() {
			t.Errorf("dimension %q not valid", d)
		}
		if seen[d] {
			t.Errorf("dimension %q listed twice", d)
		}
		seen[d] = true
	}
	if Dimension("smoking").IsValid() {
		t.Error("unknown dimension accepted")
	}
}

func TestUser_ContactSummary(t *testing.T) {
	t.Parallel()

	u := User{ID: uuid.New(), Name: "Priya", PhoneNumber: "+1 555 0100", WhatsAppNumber: "+1 555 0101"}
	c := u.ContactSummary()
	if c.OwnerID != u.ID || c.Name != "Priya" || c.PhoneNumber != u.PhoneNumber || c.WhatsAppNumber != u.WhatsAppNumber {
		t.Errorf("unexpected summary: %+v", c)
	}
}
