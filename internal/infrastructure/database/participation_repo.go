package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.ParticipationRepository = (*ParticipationRepository)(nil)

type ParticipationRepository struct {
	db DBTX
}

func NewParticipationRepository(db DBTX) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) Create(ctx context.Context, p *entities.Participation) error {
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO participations (event_id, tenant_id, user_id, status, registered_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		int64(p.EventID), p.TenantID, p.UserID, string(p.Status), p.RegisteredAt,
	).Scan(&id, &createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return domain.ErrParticipationExists
	}
	if err != nil {
		return fmt.Errorf("create participation: %w", err)
	}
	p.ID = uint(id)
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, eventID, id uint) (*entities.Participation, error) {
	return r.findOne(ctx, `SELECT `+participationColumns+` FROM participations p WHERE p.event_id = $1 AND p.id = $2`,
		int64(eventID), int64(id))
}

func (r *ParticipationRepository) FindByIDForUpdate(ctx context.Context, eventID, id uint) (*entities.Participation, error) {
	return r.findOne(ctx, `SELECT `+participationColumns+` FROM participations p WHERE p.event_id = $1 AND p.id = $2 FOR UPDATE`,
		int64(eventID), int64(id))
}

func (r *ParticipationRepository) FindByEventIDAndUserID(ctx context.Context, eventID uint, userID string) (*entities.Participation, error) {
	return r.findOne(ctx, `SELECT `+participationColumns+` FROM participations p WHERE p.event_id = $1 AND p.user_id = $2`,
		int64(eventID), userID)
}

func (r *ParticipationRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Participation, error) {
	var p entities.Participation
	err := scanParticipation(r.db.QueryRow(ctx, query, args...), &p)
	if isNoRows(err) {
		return nil, domain.ErrParticipationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get participation: %w", err)
	}
	return &p, nil
}

func (r *ParticipationRepository) CountActiveByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM participations WHERE event_id = $1 AND status <> $2`,
		int64(eventID), string(domain.StatusCancelled),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active participations: %w", err)
	}
	return count, nil
}

func (r *ParticipationRepository) CountByStatus(ctx context.Context, eventID uint) (map[domain.ParticipationStatus]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM participations WHERE event_id = $1 GROUP BY status`,
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
	rows, err := r.db.Query(ctx, `
		SELECT `+participationColumns+`,
			COALESCE(u.first_name, ''), COALESCE(u.last_name, ''), COALESCE(u.email, ''), COALESCE(u.badge_number, ''),
			m.id IS NOT NULL, COALESCE(m.menu, '')
		FROM participations p
		LEFT JOIN users u ON u.tenant_id = p.tenant_id AND u.id = p.user_id
		LEFT JOIN meal_registrations m ON m.participation_id = p.id
		WHERE p.tenant_id = $1 AND p.event_id = $2
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
	var updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		UPDATE participations
		SET status = $3, check_in_time = $4, validated_by = $5, validated_at = $6, excuse_reason = $7, updated_at = NOW()
		WHERE event_id = $1 AND id = $2
		RETURNING updated_at`,
		int64(p.EventID), int64(p.ID), string(p.Status),
		timePtrToTimestamptz(p.CheckInTime), p.ValidatedBy, timePtrToTimestamptz(p.ValidatedAt), p.ExcuseReason,
	).Scan(&updatedAt)
	if isNoRows(err) {
		return domain.ErrParticipationNotFound
	}
	if err != nil {
		return fmt.Errorf("update participation: %w", err)
	}
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
