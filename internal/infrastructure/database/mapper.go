package database

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

const uniqueViolation = "23505"

const eventColumns = `id, tenant_id, type, title, description, location, starts_at, ends_at,
	max_participants, catering, menus, status, creator_id, check_in_code, created_at, updated_at`

const participationColumns = `p.id, p.event_id, p.tenant_id, p.user_id, p.status, p.registered_at,
	p.check_in_time, p.validated_by, p.validated_at, p.excuse_reason, p.created_at, p.updated_at`

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

func pgtypeTimestamptzToPtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func timePtrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgtypeInt4ToPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func intPtrToInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e                  entities.Event
		id                 int64
		typ, status        string
		maxParticipants    pgtype.Int4
		startsAt, endsAt   pgtype.Timestamptz
		createdAt, updated pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &e.TenantID, &typ, &e.Title, &e.Description, &e.Location, &startsAt, &endsAt,
		&maxParticipants, &e.Catering, &e.Menus, &status, &e.CreatorID, &e.CheckInCode, &createdAt, &updated,
	)
	if err != nil {
		return nil, err
	}
	e.ID = uint(id)
	e.Type = domain.EventType(typ)
	e.Status = domain.EventStatus(status)
	e.StartsAt = pgtypeTimestamptzToTime(startsAt)
	e.EndsAt = pgtypeTimestamptzToTime(endsAt)
	e.MaxParticipants = pgtypeInt4ToPtr(maxParticipants)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updated)
	return &e, nil
}

// scanParticipation scans participationColumns followed by extra destinations.
func scanParticipation(row pgx.Row, p *entities.Participation, extra ...any) error {
	var (
		id, eventID          int64
		status               string
		registeredAt         pgtype.Timestamptz
		checkIn, validatedAt pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)
	dest := []any{
		&id, &eventID, &p.TenantID, &p.UserID, &status, &registeredAt,
		&checkIn, &p.ValidatedBy, &validatedAt, &p.ExcuseReason, &createdAt, &updatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	p.ID = uint(id)
	p.EventID = uint(eventID)
	p.Status = domain.ParticipationStatus(status)
	p.RegisteredAt = pgtypeTimestamptzToTime(registeredAt)
	p.CheckInTime = pgtypeTimestamptzToPtr(checkIn)
	p.ValidatedAt = pgtypeTimestamptzToPtr(validatedAt)
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
