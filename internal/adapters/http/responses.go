package httpapi

import (
	"time"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type eventResponse struct {
	ID              uint      `json:"id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	MaxParticipants *int      `json:"maxParticipants"`
	Catering        bool      `json:"catering"`
	Menus           []string  `json:"menus"`
	Status          string    `json:"status"`
	CreatorID       string    `json:"creatorId"`
	CheckInCode     string    `json:"checkInCode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// newEventResponse hides the check-in code from actors who cannot manage events.
func newEventResponse(e *entities.Event, actor domain.Actor) eventResponse {
	menus := e.Menus
	if menus == nil {
		menus = []string{}
	}
	r := eventResponse{
		ID:              e.ID,
		Type:            string(e.Type),
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartsAt:        e.StartsAt,
		EndsAt:          e.EndsAt,
		MaxParticipants: e.MaxParticipants,
		Catering:        e.Catering,
		Menus:           menus,
		Status:          string(e.Status),
		CreatorID:       e.CreatorID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if actor.Can(domain.CapManageEvents) {
		r.CheckInCode = e.CheckInCode
	}
	return r
}

type participationResponse struct {
	ID           uint       `json:"id"`
	EventID      uint       `json:"eventId"`
	UserID       string     `json:"userId"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registeredAt"`
	CheckInTime  *time.Time `json:"checkInTime"`
	ValidatedBy  string     `json:"validatedBy,omitempty"`
	ValidatedAt  *time.Time `json:"validatedAt"`
	ExcuseReason string     `json:"excuseReason,omitempty"`
}

func newParticipationResponse(p *entities.Participation) participationResponse {
	return participationResponse{
		ID:           p.ID,
		EventID:      p.EventID,
		UserID:       p.UserID,
		Status:       string(p.Status),
		RegisteredAt: p.RegisteredAt,
		CheckInTime:  p.CheckInTime,
		ValidatedBy:  p.ValidatedBy,
		ValidatedAt:  p.ValidatedAt,
		ExcuseReason: p.ExcuseReason,
	}
}

type userResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	BadgeNumber string    `json:"badgeNumber"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
