package application

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

var _ input.PersonnelUseCase = (*PersonnelService)(nil)

type PersonnelService struct {
	store output.Store
}

func NewPersonnelService(store output.Store) *PersonnelService {
	return &PersonnelService{store: store}
}

// UpsertUser creates or replaces the directory entry of an agent in the actor's tenant.
func (s *PersonnelService) UpsertUser(ctx context.Context, actor domain.Actor, user entities.User) (_ *entities.User, err error) {
	ctx, span := startSpan(ctx, "personnel.Upsert", actor)
	defer func() { endSpan(span, err) }()

	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if !actor.Can(domain.CapManagePersonnel) {
		return nil, domain.ErrForbidden
	}

	user.ID = strings.TrimSpace(user.ID)
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Email = strings.TrimSpace(user.Email)
	user.BadgeNumber = strings.TrimSpace(user.BadgeNumber)
	switch {
	case user.ID == "":
		return nil, domain.ErrInvalidPersonnel.WithDetail("id is required")
	case user.LastName == "":
		return nil, domain.ErrInvalidPersonnel.WithDetail("lastName is required")
	case user.Email != "":
		if _, err := mail.ParseAddress(user.Email); err != nil {
			return nil, domain.ErrInvalidPersonnel.WithDetail("invalid email")
		}
	}
	user.TenantID = actor.TenantID
	user.UpdatedAt = time.Now().UTC()

	if err := s.store.Repos().Users.Upsert(ctx, &user); err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &user, nil
}
