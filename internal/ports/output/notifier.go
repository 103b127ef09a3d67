package output

import (
	"context"

	"fmpa/internal/domain/entities"
)

type NotificationKind string

const (
	NotifyEventPublished         NotificationKind = "event_published"
	NotifyEventCancelled         NotificationKind = "event_cancelled"
	NotifyParticipationValidated NotificationKind = "participation_validated"
)

type Notification struct {
	Kind          NotificationKind
	ActorID       string
	Event         entities.Event
	Participation *entities.Participation
}

// Notifier delivers notifications. Failures are logged by callers, never surfaced.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
