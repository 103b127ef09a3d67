package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (tenant_id, id, first_name, last_name, email, badge_number, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			badge_number = EXCLUDED.badge_number,
			updated_at = EXCLUDED.updated_at`,
		user.TenantID, user.ID, user.FirstName, user.LastName, user.Email, user.BadgeNumber, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tenantID, id string) (*entities.User, error) {
	var (
		u         entities.User
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		SELECT tenant_id, id, first_name, last_name, email, badge_number, updated_at
		FROM users WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	).Scan(&u.TenantID, &u.ID, &u.FirstName, &u.LastName, &u.Email, &u.BadgeNumber, &updatedAt)
	if isNoRows(err) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &u, nil
}
