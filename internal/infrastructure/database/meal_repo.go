package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/output"
)

var _ output.MealRepository = (*MealRepository)(nil)

type MealRepository struct {
	db DBTX
}

func NewMealRepository(db DBTX) *MealRepository {
	return &MealRepository{db: db}
}

func (r *MealRepository) Create(ctx context.Context, meal *entities.MealRegistration) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`INSERT INTO meal_registrations (participation_id, menu) VALUES ($1, $2) RETURNING id, created_at`,
		int64(meal.ParticipationID), meal.Menu,
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create meal registration: %w", err)
	}
	meal.ID = uint(id)
	meal.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *MealRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM meal_registrations m
		JOIN participations p ON p.id = m.participation_id
		WHERE p.event_id = $1`,
		int64(eventID),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count meals: %w", err)
	}
	return count, nil
}

func (r *MealRepository) CountByMenu(ctx context.Context, eventID uint) ([]entities.MenuCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.menu, COUNT(*) FROM meal_registrations m
		JOIN participations p ON p.id = m.participation_id
		WHERE p.event_id = $1
		GROUP BY m.menu
		ORDER BY m.menu`,
		int64(eventID),
	)
	if err != nil {
		return nil, fmt.Errorf("count meals by menu: %w", err)
	}
	defer rows.Close()

	counts := make([]entities.MenuCount, 0)
	for rows.Next() {
		var mc entities.MenuCount
		if err := rows.Scan(&mc.Menu, &mc.Count); err != nil {
			return nil, fmt.Errorf("scan menu count: %w", err)
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}
