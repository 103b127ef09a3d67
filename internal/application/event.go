package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/domain/policy"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	store    output.Store
	notifier output.Notifier
}

func NewEventService(store output.Store, notifier output.Notifier) *EventService {
	return &EventService{
		store:    store,
		notifier: notifier,
	}
}

// CreateEvent creates a DRAFT event with a fresh check-in code.
func (s *EventService) CreateEvent(ctx context.Context, actor domain.Actor, ne entities.NewEvent) (_ *entities.Event, err error) {
	ctx, span := startSpan(ctx, "event.Create", actor)
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if !actor.Can(domain.CapManageEvents) {
		return nil, domain.ErrForbidden
	}
	if err := policy.ValidateNewEvent(&ne); err != nil {
		return nil, err
	}
	event := &entities.Event{
		TenantID:        actor.TenantID,
		Type:            ne.Type,
		Title:           ne.Title,
		Description:     ne.Description,
		Location:        ne.Location,
		StartsAt:        ne.StartsAt.UTC(),
		EndsAt:          ne.EndsAt.UTC(),
		MaxParticipants: ne.MaxParticipants,
		Catering:        ne.Catering,
		Menus:           ne.Menus,
		Status:          domain.EventDraft,
		CreatorID:       actor.ID,
		CheckInCode:     uuid.NewString(),
	}
	if err := s.store.Repos().Events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, actor domain.Actor, id uint) (_ *entities.Event, err error) {
	ctx, span := startSpan(ctx, "event.Get", actor, eventAttr(id))
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	return loadVisibleEvent(ctx, s.store.Repos().Events, actor, id)
}

func (s *EventService) ListEvents(ctx context.Context, actor domain.Actor, query entities.EventQuery) (_ []entities.Event, err error) {
	ctx, span := startSpan(ctx, "event.List", actor)
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	query.IncludeDrafts = actor.Can(domain.CapManageEvents)
	events, err := s.store.Repos().Events.List(ctx, actor.TenantID, query.Normalize())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// TransitionEvent moves an event along DRAFT -> PUBLISHED -> IN_PROGRESS -> COMPLETED,
// or to CANCELLED from any non-terminal state.
func (s *EventService) TransitionEvent(ctx context.Context, actor domain.Actor, id uint, target domain.EventStatus) (_ *entities.Event, err error) {
	ctx, span := startSpan(ctx, "event.Transition", actor, eventAttr(id))
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	var updated *entities.Event
	err = s.store.WithinTx(ctx, func(ctx context.Context, r output.Repositories) error {
		event, err := r.Events.FindByIDForUpdate(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		updated, err = policy.TransitionEvent(actor, event, target)
		if err != nil {
			return err
		}
		updated.UpdatedAt = time.Now().UTC()
		return r.Events.UpdateStatus(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	switch updated.Status {
	case domain.EventPublished:
		notify(ctx, s.notifier, output.Notification{Kind: output.NotifyEventPublished, ActorID: actor.ID, Event: *updated})
	case domain.EventCancelled:
		notify(ctx, s.notifier, output.Notification{Kind: output.NotifyEventCancelled, ActorID: actor.ID, Event: *updated})
	}
	return updated, nil
}
