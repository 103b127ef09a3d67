package application

import (
	"context"
	"fmt"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/domain/policy"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

var _ input.StatsUseCase = (*StatsService)(nil)

type StatsService struct {
	store output.Store
}

func NewStatsService(store output.Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) EventStats(ctx context.Context, actor domain.Actor, eventID uint) (_ *entities.EventStats, err error) {
	ctx, span := startSpan(ctx, "stats.Event", actor, eventAttr(eventID))
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	repos := s.store.Repos()
	event, err := loadVisibleEvent(ctx, repos.Events, actor, eventID)
	if err != nil {
		return nil, err
	}
	stats, err := computeStats(ctx, repos, event)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// computeStats runs one grouped status count, one meal count and one grouped
// menu count, whatever the number of participations.
func computeStats(ctx context.Context, repos output.Repositories, event *entities.Event) (entities.EventStats, error) {
	byStatus, err := repos.Participations.CountByStatus(ctx, event.ID)
	if err != nil {
		return entities.EventStats{}, fmt.Errorf("count participations by status: %w", err)
	}
	meals, err := repos.Meals.CountByEventID(ctx, event.ID)
	if err != nil {
		return entities.EventStats{}, fmt.Errorf("count meals: %w", err)
	}
	menus, err := repos.Meals.CountByMenu(ctx, event.ID)
	if err != nil {
		return entities.EventStats{}, fmt.Errorf("count meals by menu: %w", err)
	}
	return policy.ComputeStats(event, byStatus, meals, menus), nil
}
