package input

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

// Registration carries the optional meal choice of a registration.
// A nil Menu means no meal; an empty one means a meal without menu preference.
type Registration struct {
	Menu *string
}

type ParticipationUseCase interface {
	Register(ctx context.Context, actor domain.Actor, eventID uint, reg Registration) (*entities.Participation, error)
	Validate(ctx context.Context, actor domain.Actor, eventID, participationID uint, target domain.ParticipationStatus, excuseReason string) (*entities.Participation, error)
	Cancel(ctx context.Context, actor domain.Actor, eventID, participationID uint) (*entities.Participation, error)
	CheckIn(ctx context.Context, actor domain.Actor, code string) (*entities.Participation, error)
}
