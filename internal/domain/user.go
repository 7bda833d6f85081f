package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account as seen by the matching service. Accounts
// are created and authenticated elsewhere; only contact fields are read here.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	Name           string
	PhoneNumber    string
	WhatsAppNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContactSummary returns the fields shown next to a match.
func (u *User) ContactSummary() ContactSummary {
	return ContactSummary{
		OwnerID:        u.ID,
		Name:           u.Name,
		PhoneNumber:    u.PhoneNumber,
		WhatsAppNumber: u.WhatsAppNumber,
	}
}
