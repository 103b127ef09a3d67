package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	db DBTX
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	menus := event.Menus
	if menus == nil {
		menus = []string{}
	}
	encodedMenus, err := json.Marshal(menus)
	if err != nil {
		return fmt.Errorf("encode menus: %w", err)
	}
	var maxParticipants sql.NullInt64
	if event.MaxParticipants != nil {
		maxParticipants = sql.NullInt64{Int64: int64(*event.MaxParticipants), Valid: true}
	}
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (tenant_id, type, title, description, location, starts_at, ends_at,
			max_participants, catering, menus, status, creator_id, check_in_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.TenantID, string(event.Type), event.Title, event.Description, event.Location,
		toMillis(event.StartsAt), toMillis(event.EndsAt), maxParticipants, event.Catering, string(encodedMenus),
		string(event.Status), event.CreatorID, event.CheckInCode, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.Menus = menus
	event.CreatedAt = fromMillis(toMillis(now))
	event.UpdatedAt = event.CreatedAt
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, tenantID string, id uint) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE tenant_id = ? AND id = ?`, tenantID, int64(id))
}

// FindByIDForUpdate is FindByID: the single connection already serializes transactions.
func (r *EventRepository) FindByIDForUpdate(ctx context.Context, tenantID string, id uint) (*entities.Event, error) {
	return r.FindByID(ctx, tenantID, id)
}

func (r *EventRepository) FindByCheckInCode(ctx context.Context, tenantID, code string) (*entities.Event, error) {
	return r.findOne(ctx, `SELECT `+eventColumns+` FROM events WHERE tenant_id = ? AND check_in_code = ?`, tenantID, code)
}

func (r *EventRepository) findOne(ctx context.Context, query string, args ...any) (*entities.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) List(ctx context.Context, tenantID string, query entities.EventQuery) ([]entities.Event, error) {
	where := []string{"tenant_id = ?"}
	args := []any{tenantID}
	if query.Type != nil {
		where = append(where, "type = ?")
		args = append(args, string(*query.Type))
	}
	if query.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*query.Status))
	}
	if !query.IncludeDrafts {
		where = append(where, "status <> ?")
		args = append(args, string(domain.EventDraft))
	}
	if query.From != nil {
		where = append(where, "starts_at >= ?")
		args = append(args, toMillis(*query.From))
	}
	if query.To != nil {
		where = append(where, "starts_at < ?")
		args = append(args, toMillis(*query.To))
	}
	args = append(args, query.Limit, query.Offset)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE `+strings.Join(where, " AND ")+
			` ORDER BY starts_at, id LIMIT ? OFFSET ?`,
		args...,
	)
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
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET status = ?, updated_at = ? WHERE tenant_id = ? AND id = ?`,
		string(event.Status), toMillis(now), event.TenantID, int64(event.ID),
	)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEventNotFound
	}
	event.UpdatedAt = fromMillis(toMillis(now))
	return nil
}
