package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	menus := event.Menus
	if menus == nil {
		menus = []string{}
	}
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (tenant_id, type, title, description, location, starts_at, ends_at,
			max_participants, catering, menus, status, creator_id, check_in_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		event.TenantID, string(event.Type), event.Title, event.Description, event.Location,
		event.StartsAt, event.EndsAt, intPtrToInt4(event.MaxParticipants), event.Catering, menus,
		string(event.Status), event.CreatorID, event.CheckInCode,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, tenantID string, id uint) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE tenant_id = $1 AND id = $2`, tenantID, int64(id))
}

func (r *EventRepository) FindByIDForUpdate(ctx context.Context, tenantID string, id uint) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE tenant_id = $1 AND id = $2 FOR UPDATE`, tenantID, int64(id))
}

func (r *EventRepository) FindByCheckInCode(ctx context.Context, tenantID, code string) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE tenant_id = $1 AND check_in_code = $2`, tenantID, code)
}

func (r *EventRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, query, args...))
	if isNoRows(err) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, tenantID string, query entities.EventQuery) ([]entities.Event, error) {
	args := []any{tenantID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	where := []string{"tenant_id = $1"}
	if query.Type != nil {
		where = append(where, "type = "+arg(string(*query.Type)))
	}
	if query.Status != nil {
		where = append(where, "status = "+arg(string(*query.Status)))
	}
	if !query.IncludeDrafts {
		where = append(where, "status <> "+arg(string(domain.EventDraft)))
	}
	if query.From != nil {
		where = append(where, "starts_at >= "+arg(*query.From))
	}
	if query.To != nil {
		where = append(where, "starts_at < "+arg(*query.To))
	}
	sql := `SELECT ` + eventColumns + ` FROM events WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY starts_at, id LIMIT ` + arg(query.Limit) + ` OFFSET ` + arg(query.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, event *entities.Event) error {
	var updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		UPDATE events SET status = $3, updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2
		RETURNING updated_at`,
		event.TenantID, int64(event.ID), string(event.Status),
	).Scan(&updatedAt)
	if isNoRows(err) {
		return domain.ErrEventNotFound
	}
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
