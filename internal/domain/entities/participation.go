package entities

import (
	"time"

	"fmpa/internal/domain"
)

// Participation represents a user's registration to an event.
type Participation struct {
	ID           uint
	EventID      uint
	TenantID     string
	UserID       string
	Status       domain.ParticipationStatus
	RegisteredAt time.Time
	CheckInTime  *time.Time
	ValidatedBy  string
	ValidatedAt  *time.Time
	ExcuseReason string // only persisted when Status is EXCUSED
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MealRegistration is the optional catering choice attached to a participation.
type MealRegistration struct {
	ID              uint
	ParticipationID uint
	Menu            string // "" = unspecified
	CreatedAt       time.Time
}

// ParticipantDetail joins a participation with the directory entry of its user
// and its meal registration, if any.
type ParticipantDetail struct {
	Participation
	FirstName   string
	LastName    string
	Email       string
	BadgeNumber string
	HasMeal     bool
	Menu        string
}

// DisplayName is "LAST First", falling back to the user id when the directory has no entry.
func (d ParticipantDetail) DisplayName() string {
	switch {
	case d.LastName != "" && d.FirstName != "":
		return d.LastName + " " + d.FirstName
	case d.LastName != "":
		return d.LastName
	case d.FirstName != "":
		return d.FirstName
	default:
		return d.UserID
	}
}
