package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/domain/policy"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

var _ input.ParticipationUseCase = (*ParticipationService)(nil)

type ParticipationService struct {
	store    output.Store
	notifier output.Notifier
}

func NewParticipationService(store output.Store, notifier output.Notifier) *ParticipationService {
	return &ParticipationService{
		store:    store,
		notifier: notifier,
	}
}

// Register creates a REGISTERED participation for actor. The event row is locked
// while active participations are counted, so concurrent registrations cannot
// overbook the event.
func (s *ParticipationService) Register(ctx context.Context, actor domain.Actor, eventID uint, reg input.Registration) (_ *entities.Participation, err error) {
	ctx, span := startSpan(ctx, "participation.Register", actor, eventAttr(eventID))
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if reg.Menu != nil {
		menu := strings.TrimSpace(*reg.Menu)
		reg.Menu = &menu
	}

	var created *entities.Participation
	err = s.store.WithinTx(ctx, func(ctx context.Context, r output.Repositories) error {
		event, err := r.Events.FindByIDForUpdate(ctx, actor.TenantID, eventID)
		if err != nil {
			return err
		}
		if !policy.CanView(actor, event) {
			return domain.ErrEventNotFound
		}
		if err := policy.CanRegister(actor, event, reg.Menu); err != nil {
			return err
		}

		existing, err := r.Participations.FindByEventIDAndUserID(ctx, event.ID, actor.ID)
		switch {
		case err == nil && existing != nil:
			return domain.ErrParticipationExists
		case err != nil && !errors.Is(err, domain.ErrParticipationNotFound):
			return fmt.Errorf("find participation: %w", err)
		}

		count, err := r.Participations.CountActiveByEventID(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("count participations: %w", err)
		}
		if policy.CheckCapacity(event, count).IsFull {
			return domain.ErrCapacityExceeded
		}

		p := &entities.Participation{
			EventID:      event.ID,
			TenantID:     event.TenantID,
			UserID:       actor.ID,
			Status:       domain.StatusRegistered,
			RegisteredAt: time.Now().UTC(),
		}
		if err := r.Participations.Create(ctx, p); err != nil {
			return err
		}
		if reg.Menu != nil {
			meal := &entities.MealRegistration{ParticipationID: p.ID, Menu: *reg.Menu}
			if err := r.Meals.Create(ctx, meal); err != nil {
				return fmt.Errorf("create meal registration: %w", err)
			}
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Validate sets the final attendance status of a participation.
func (s *ParticipationService) Validate(
	ctx context.Context,
	actor domain.Actor,
	eventID, participationID uint,
	target domain.ParticipationStatus,
	excuseReason string,
) (_ *entities.Participation, err error) {
	ctx, span := startSpan(ctx, "participation.Validate", actor,
		eventAttr(eventID),
		attribute.Int64("participation.id", int64(participationID)),
		attribute.String("participation.target", string(target)),
	)
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	var (
		event   *entities.Event
		updated *entities.Participation
	)
	err = s.store.WithinTx(ctx, func(ctx context.Context, r output.Repositories) error {
		var err error
		event, err = r.Events.FindByID(ctx, actor.TenantID, eventID)
		if err != nil {
			return err
		}
		p, err := r.Participations.FindByIDForUpdate(ctx, event.ID, participationID)
		if err != nil {
			return err
		}
		updated, err = policy.ValidateTransition(actor, event, p, target, excuseReason, time.Now().UTC())
		if err != nil {
			return err
		}
		return r.Participations.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	notify(ctx, s.notifier, output.Notification{
		Kind:          output.NotifyParticipationValidated,
		ActorID:       actor.ID,
		Event:         *event,
		Participation: updated,
	})
	return updated, nil
}

// Cancel withdraws the actor's own participation. The row is kept for history.
func (s *ParticipationService) Cancel(ctx context.Context, actor domain.Actor, eventID, participationID uint) (_ *entities.Participation, err error) {
	ctx, span := startSpan(ctx, "participation.Cancel", actor, eventAttr(eventID))
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	var updated *entities.Participation
	err = s.store.WithinTx(ctx, func(ctx context.Context, r output.Repositories) error {
		event, err := r.Events.FindByID(ctx, actor.TenantID, eventID)
		if err != nil {
			return err
		}
		p, err := r.Participations.FindByIDForUpdate(ctx, event.ID, participationID)
		if err != nil {
			return err
		}
		updated, err = policy.Cancel(actor, event, p)
		if err != nil {
			return err
		}
		return r.Participations.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CheckIn marks the actor present on the event identified by its QR code.
func (s *ParticipationService) CheckIn(ctx context.Context, actor domain.Actor, code string) (_ *entities.Participation, err error) {
	ctx, span := startSpan(ctx, "participation.CheckIn", actor)
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrEventNotFound
	}
	var updated *entities.Participation
	err = s.store.WithinTx(ctx, func(ctx context.Context, r output.Repositories) error {
		event, err := r.Events.FindByCheckInCode(ctx, actor.TenantID, code)
		if err != nil {
			return err
		}
		p, err := r.Participations.FindByEventIDAndUserID(ctx, event.ID, actor.ID)
		if err != nil {
			return err
		}
		updated, err = policy.CheckIn(actor, event, p, time.Now().UTC())
		if err != nil {
			return err
		}
		return r.Participations.Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
