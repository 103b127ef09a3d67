package input

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type StatsUseCase interface {
	EventStats(ctx context.Context, actor domain.Actor, eventID uint) (*entities.EventStats, error)
}
