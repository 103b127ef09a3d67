package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

const eventColumns = `id, tenant_id, type, title, description, location, starts_at, ends_at,
	max_participants, catering, menus, status, creator_id, check_in_code, created_at, updated_at`

const participationColumns = `p.id, p.event_id, p.tenant_id, p.user_id, p.status, p.registered_at,
	p.check_in_time, p.validated_by, p.validated_at, p.excuse_reason, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func toNullMillis(value *time.Time) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*value), Valid: true}
}

func fromNullMillis(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

func scanEvent(row rowScanner) (*entities.Event, error) {
	var (
		e                    entities.Event
		id                   int64
		typ, status, menus   string
		maxParticipants      sql.NullInt64
		startsAt, endsAt     int64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&id, &e.TenantID, &typ, &e.Title, &e.Description, &e.Location, &startsAt, &endsAt,
		&maxParticipants, &e.Catering, &menus, &status, &e.CreatorID, &e.CheckInCode, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(menus), &e.Menus); err != nil {
		return nil, err
	}
	e.ID = uint(id)
	e.Type = domain.EventType(typ)
	e.Status = domain.EventStatus(status)
	e.StartsAt = fromMillis(startsAt)
	e.EndsAt = fromMillis(endsAt)
	if maxParticipants.Valid {
		m := int(maxParticipants.Int64)
		e.MaxParticipants = &m
	}
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return &e, nil
}

func scanParticipation(row rowScanner, p *entities.Participation, extra ...any) error {
	var (
		id, eventID          int64
		status               string
		registeredAt         int64
		checkIn, validatedAt sql.NullInt64
		createdAt, updatedAt int64
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
	p.RegisteredAt = fromMillis(registeredAt)
	p.CheckInTime = fromNullMillis(checkIn)
	p.ValidatedAt = fromNullMillis(validatedAt)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return nil
}
