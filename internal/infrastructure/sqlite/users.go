package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db DBTX
}

func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (tenant_id, id, first_name, last_name, email, badge_number, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			badge_number = excluded.badge_number,
			updated_at = excluded.updated_at`,
		user.TenantID, user.ID, user.FirstName, user.LastName, user.Email, user.BadgeNumber, toMillis(user.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tenantID, id string) (*entities.User, error) {
	var (
		u         entities.User
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT tenant_id, id, first_name, last_name, email, badge_number, updated_at
		FROM users WHERE tenant_id = ? AND id = ?`,
		tenantID, id,
	).Scan(&u.TenantID, &u.ID, &u.FirstName, &u.LastName, &u.Email, &u.BadgeNumber, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}
