package output

import (
	"context"

	"fmpa/internal/domain/entities"
)

// EventRepository persists events. Every lookup is scoped by tenant and returns
// domain.ErrEventNotFound when no event matches.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, tenantID string, id uint) (*entities.Event, error)
	// FindByIDForUpdate locks the event row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, tenantID string, id uint) (*entities.Event, error)
	FindByCheckInCode(ctx context.Context, tenantID, code string) (*entities.Event, error)
	List(ctx context.Context, tenantID string, query entities.EventQuery) ([]entities.Event, error)
	UpdateStatus(ctx context.Context, event *entities.Event) error
}
