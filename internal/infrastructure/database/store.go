package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fmpa/internal/ports/output"
)

var _ output.Store = (*Store)(nil)

// Store serves repositories over a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func repositories(db DBTX) output.Repositories {
	return output.Repositories{
		Events:         NewEventRepository(db),
		Participations: NewParticipationRepository(db),
		Meals:          NewMealRepository(db),
		Users:          NewUserRepository(db),
	}
}

func (s *Store) Repos() output.Repositories {
	return repositories(s.pool)
}

// WithinTx runs fn in a READ COMMITTED transaction. Row locks taken with
// FindByIDForUpdate serialize concurrent writers on the same event.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos output.Repositories) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, repositories(tx))
	})
}
