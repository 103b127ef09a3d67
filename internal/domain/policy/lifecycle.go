// Package policy holds the pure FMPA rules: participation transitions,
// capacity, event lifecycle and statistics. Nothing here touches storage.
package policy

import (
	"strings"
	"time"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

// ValidateTransition applies a presence validation requested by actor and returns
// the updated participation. p is never modified; on error nothing is applied.
func ValidateTransition(
	actor domain.Actor,
	event *entities.Event,
	p *entities.Participation,
	target domain.ParticipationStatus,
	excuseReason string,
	now time.Time,
) (*entities.Participation, error) {
	if event.TenantID != actor.TenantID || p.EventID != event.ID {
		return nil, domain.ErrParticipationNotFound
	}
	if !actor.Can(domain.CapValidateParticipation) {
		return nil, domain.ErrForbidden
	}
	// A cancelled place may already be taken; it can only come back through registration.
	if p.Status == domain.StatusCancelled {
		return nil, domain.ErrParticipationCancelled
	}
	if !target.IsValidationTarget() {
		return nil, domain.ErrInvalidTargetStatus.WithDetail(string(target))
	}
	excuseReason = strings.TrimSpace(excuseReason)
	if target == domain.StatusExcused && excuseReason == "" {
		return nil, domain.ErrExcuseReasonRequired
	}

	updated := *p
	updated.Status = target
	if target == domain.StatusPresent && updated.CheckInTime == nil {
		t := now
		updated.CheckInTime = &t
	}
	if target == domain.StatusExcused {
		updated.ExcuseReason = excuseReason
	} else {
		updated.ExcuseReason = ""
	}
	validatedAt := now
	updated.ValidatedBy = actor.ID
	updated.ValidatedAt = &validatedAt
	return &updated, nil
}

// Cancel withdraws the actor's own participation.
func Cancel(actor domain.Actor, event *entities.Event, p *entities.Participation) (*entities.Participation, error) {
	if event.TenantID != actor.TenantID || p.EventID != event.ID {
		return nil, domain.ErrParticipationNotFound
	}
	if p.UserID != actor.ID {
		return nil, domain.ErrNotParticipant
	}
	switch event.Status {
	case domain.EventInProgress, domain.EventCompleted, domain.EventCancelled:
		return nil, domain.ErrCancellationClosed
	}
	if p.Status == domain.StatusCancelled {
		return nil, domain.ErrParticipationCancelled
	}
	updated := *p
	updated.Status = domain.StatusCancelled
	updated.ExcuseReason = ""
	return &updated, nil
}

// CheckIn marks the actor present after scanning the event code.
// Unlike a validation it leaves ValidatedBy unset.
func CheckIn(actor domain.Actor, event *entities.Event, p *entities.Participation, now time.Time) (*entities.Participation, error) {
	if event.TenantID != actor.TenantID || p.EventID != event.ID {
		return nil, domain.ErrParticipationNotFound
	}
	if p.UserID != actor.ID {
		return nil, domain.ErrNotParticipant
	}
	if event.Status != domain.EventPublished && event.Status != domain.EventInProgress {
		return nil, domain.ErrCheckInClosed
	}
	if p.Status == domain.StatusCancelled {
		return nil, domain.ErrParticipationCancelled
	}
	updated := *p
	updated.Status = domain.StatusPresent
	updated.ExcuseReason = ""
	if updated.CheckInTime == nil {
		t := now
		updated.CheckInTime = &t
	}
	return &updated, nil
}

// CanRegister checks the event-side preconditions of a registration.
// Capacity is checked separately, under the registration transaction.
func CanRegister(actor domain.Actor, event *entities.Event, menu *string) error {
	if event.TenantID != actor.TenantID {
		return domain.ErrEventNotFound
	}
	if event.Status != domain.EventPublished {
		return domain.ErrEventNotOpen
	}
	if menu != nil {
		if !event.Catering {
			return domain.ErrCateringUnavailable
		}
		if !event.OffersMenu(strings.TrimSpace(*menu)) {
			return domain.ErrUnknownMenu.WithDetail(*menu)
		}
	}
	return nil
}
