package input

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type PersonnelUseCase interface {
	UpsertUser(ctx context.Context, actor domain.Actor, user entities.User) (*entities.User, error)
}
