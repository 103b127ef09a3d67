package output

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

// ParticipationRepository persists participations. Lookups return
// domain.ErrParticipationNotFound when nothing matches and Create returns
// domain.ErrParticipationExists on a duplicate (event, user) pair.
type ParticipationRepository interface {
	Create(ctx context.Context, participation *entities.Participation) error
	FindByID(ctx context.Context, eventID, id uint) (*entities.Participation, error)
	// FindByIDForUpdate locks the participation row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, eventID, id uint) (*entities.Participation, error)
	FindByEventIDAndUserID(ctx context.Context, eventID uint, userID string) (*entities.Participation, error)
	// CountActiveByEventID counts participations that are not CANCELLED.
	CountActiveByEventID(ctx context.Context, eventID uint) (int64, error)
	// CountByStatus runs one grouped query; absent statuses are missing from the map.
	CountByStatus(ctx context.Context, eventID uint) (map[domain.ParticipationStatus]int64, error)
	ListDetails(ctx context.Context, tenantID string, eventID uint) ([]entities.ParticipantDetail, error)
	Update(ctx context.Context, participation *entities.Participation) error
}
