package output

import (
	"context"

	"fmpa/internal/domain/entities"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, tenantID, id string) (*entities.User, error)
}
