package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.ParticipationRepository = (*ParticipationRepository)(nil)

type ParticipationRepository struct {
	db DBTX
}

func (r *ParticipationRepository) Create(ctx context.Context, p *entities.Participation) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO participations (event_id, tenant_id, user_id, status, registered_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(p.EventID), p.TenantID, p.UserID, string(p.Status), toMillis(p.RegisteredAt), toMillis(now), toMillis(now),
	)
	if isUniqueViolation(err) {
		return domain.ErrParticipationExists
	}
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	p.ID = uint(id)
	p.RegisteredAt = fromMillis(toMillis(p.RegisteredAt))
	p.CreatedAt = fromMillis(toMillis(now))
	p.UpdatedAt = p.CreatedAt
	return nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, eventID, id uint) (*entities.Participation, error) {
	return r.findOne(ctx, `SELECT `+participationColumns+` FROM participations p WHERE p.event_id = ? AND p.id = ?`,
		int64(eventID), int64(id))
}

func (r *ParticipationRepository) FindByIDForUpdate(ctx context.Context, eventID, id uint) (*entities.Participation, error) {
	return r.FindByID(ctx, eventID, id)
}

func (r *ParticipationRepository) FindByEventIDAndUserID(ctx context.Context, eventID uint, userID string) (*entities.Participation, error) {
	return r.findOne(ctx, `SELECT `+participationColumns+` FROM participations p WHERE p.event_id = ? AND p.user_id = ?`,
		int64(eventID), userID)
}

func (r *ParticipationRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Participation, error) {
	var p entities.Participation
	err := scanParticipation(r.db.QueryRowContext(ctx, query, args...), &p)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrParticipationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participation: %w", err)
	}
	return &p, nil
}

func (r *ParticipationRepository) CountActiveByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM participations WHERE event_id = ? AND status <> ?`,
		int64(eventID), string(domain.StatusCancelled),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active participations: %w", err)
	}
	return count, nil
}

func (r *ParticipationRepository) CountByStatus(ctx context.Context, eventID uint) (map[domain.ParticipationStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM participations WHERE event_id = ? GROUP BY status`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("count participations by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ParticipationStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[domain.ParticipationStatus(status)] = count
	}
	return counts, rows.Err()
}

func (r *ParticipationRepository) ListDetails(ctx context.Context, tenantID string, eventID uint) ([]entities.ParticipantDetail, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+participationColumns+`,
			COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, ''), COALESCE(u.badge_number, ''),
			m.id IS NOT NULL, COALESCE(m.menu, '')
		FROM participations p
		LEFT JOIN users u ON u.tenant_id = p.tenant_id AND u.id = p.user_id
		LEFT JOIN meal_registrations m ON m.participation_id = p.id
		WHERE p.tenant_id = ? AND p.event_id = ?
		ORDER BY COALESCE(u.last_name, ''), COALESCE(u.first_name, ''), p.user_id`,
		tenantID, int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	details := make([]entities.ParticipantDetail, 0)
	for rows.Next() {
		var d entities.ParticipantDetail
		err := scanParticipation(rows, &d.Participation,
			&d.FirstName, &d.LastName, &d.Email, &d.BadgeNumber, &d.HasMeal, &d.Menu)
		if err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *ParticipationRepository) Update(ctx context.Context, p *entities.Participation) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE participations
		SET status = ?, check_in_time = ?, validated_by = ?, validated_at = ?, excuse_reason = ?, updated_at = ?
		WHERE event_id = ? AND id = ?`,
		string(p.Status), toNullMillis(p.CheckInTime), p.ValidatedBy, toNullMillis(p.ValidatedAt), p.ExcuseReason,
		toMillis(now), int64(p.EventID), int64(p.ID),
	)
	if err != nil {
		return fmt.Errorf("update participation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrParticipationNotFound
	}
	p.UpdatedAt = fromMillis(toMillis(now))
	return nil
}
