package entities

import (
	"time"

	"fmpa/internal/domain"
)

const (
	DefaultEventLimit = 50
	MaxEventLimit     = 200
)

// EventQuery filters an event listing. Nil fields do not filter.
// From/To bound StartsAt (inclusive From, exclusive To).
type EventQuery struct {
	Type          *domain.EventType
	Status        *domain.EventStatus
	From          *time.Time
	To            *time.Time
	IncludeDrafts bool
	Limit         int
	Offset        int
}

// Normalize applies the default and maximum page size.
func (q EventQuery) Normalize() EventQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultEventLimit
	}
	if q.Limit > MaxEventLimit {
		q.Limit = MaxEventLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
