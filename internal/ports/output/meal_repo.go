package output

import (
	"context"

	"fmpa/internal/domain/entities"
)

type MealRepository interface {
	Create(ctx context.Context, meal *entities.MealRegistration) error
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	// CountByMenu groups meal registrations by menu; an unspecified menu is "".
	CountByMenu(ctx context.Context, eventID uint) ([]entities.MenuCount, error)
}
