package input

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, actor domain.Actor, ne entities.NewEvent) (*entities.Event, error)
	GetEvent(ctx context.Context, actor domain.Actor, id uint) (*entities.Event, error)
	ListEvents(ctx context.Context, actor domain.Actor, query entities.EventQuery) ([]entities.Event, error)
	TransitionEvent(ctx context.Context, actor domain.Actor, id uint, target domain.EventStatus) (*entities.Event, error)
}
