package policy

import (
	"strings"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

var eventTransitions = map[domain.EventStatus][]domain.EventStatus{
	domain.EventDraft:      {domain.EventPublished, domain.EventCancelled},
	domain.EventPublished:  {domain.EventInProgress, domain.EventCancelled},
	domain.EventInProgress: {domain.EventCompleted, domain.EventCancelled},
}

// CanTransitionEvent reports whether from -> to is a legal lifecycle step.
func CanTransitionEvent(from, to domain.EventStatus) bool {
	for _, s := range eventTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionEvent moves event to target on behalf of actor.
func TransitionEvent(actor domain.Actor, event *entities.Event, target domain.EventStatus) (*entities.Event, error) {
	if event.TenantID != actor.TenantID {
		return nil, domain.ErrEventNotFound
	}
	if !actor.Can(domain.CapManageEvents) {
		return nil, domain.ErrForbidden
	}
	if !CanTransitionEvent(event.Status, target) {
		return nil, domain.ErrInvalidEventTransition.WithDetail(string(event.Status) + " -> " + string(target))
	}
	updated := *event
	updated.Status = target
	return &updated, nil
}

// ValidateNewEvent normalizes ne and checks its fields.
func ValidateNewEvent(ne *entities.NewEvent) error {
	ne.Title = strings.TrimSpace(ne.Title)
	ne.Location = strings.TrimSpace(ne.Location)
	ne.Description = strings.TrimSpace(ne.Description)
	switch {
	case ne.Title == "":
		return domain.ErrInvalidEvent.WithDetail("title is required")
	case !ne.Type.Valid():
		return domain.ErrInvalidEvent.WithDetail("unknown type " + string(ne.Type))
	case ne.StartsAt.IsZero() || ne.EndsAt.IsZero():
		return domain.ErrInvalidEvent.WithDetail("start and end are required")
	case !ne.EndsAt.After(ne.StartsAt):
		return domain.ErrInvalidEvent.WithDetail("end must be after start")
	case ne.MaxParticipants != nil && *ne.MaxParticipants < 1:
		return domain.ErrInvalidEvent.WithDetail("maxParticipants must be at least 1")
	case len(ne.Menus) > 0 && !ne.Catering:
		return domain.ErrInvalidEvent.WithDetail("menus require catering")
	}
	menus := make([]string, 0, len(ne.Menus))
	for _, m := range ne.Menus {
		if m = strings.TrimSpace(m); m != "" {
			menus = append(menus, m)
		}
	}
	ne.Menus = menus
	return nil
}

// CanView reports whether actor may see event. Drafts are hidden from
// actors who cannot manage events.
func CanView(actor domain.Actor, event *entities.Event) bool {
	if event.TenantID != actor.TenantID {
		return false
	}
	if event.Status == domain.EventDraft {
		return actor.Can(domain.CapManageEvents) || event.CreatorID == actor.ID
	}
	return true
}
