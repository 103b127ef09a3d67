package entities

import (
	"time"

	"fmpa/internal/domain"
)

type Event struct {
	ID              uint
	TenantID        string
	Type            domain.EventType
	Title           string
	Description     string
	Location        string
	StartsAt        time.Time
	EndsAt          time.Time
	MaxParticipants *int // nil = unbounded
	Catering        bool
	Menus           []string // empty = any menu label accepted when Catering
	Status          domain.EventStatus
	CreatorID       string
	CheckInCode     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OffersMenu reports whether menu can be chosen for this event.
func (e *Event) OffersMenu(menu string) bool {
	if !e.Catering {
		return false
	}
	if len(e.Menus) == 0 || menu == "" {
		return true
	}
	for _, m := range e.Menus {
		if m == menu {
			return true
		}
	}
	return false
}

// NewEvent contains information needed to create an Event.
type NewEvent struct {
	Type            domain.EventType
	Title           string
	Description     string
	Location        string
	StartsAt        time.Time
	EndsAt          time.Time
	MaxParticipants *int
	Catering        bool
	Menus           []string
}
