package output

import "context"

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Events         EventRepository
	Participations ParticipationRepository
	Meals          MealRepository
	Users          UserRepository
}

// Store gives access to repositories, either directly or inside a transaction.
type Store interface {
	Repos() Repositories
	// WithinTx runs fn in a single transaction, committed when fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
