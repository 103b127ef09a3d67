package policy

import "fmpa/internal/domain/entities"

// CheckCapacity reports whether an event holding count participations is full.
// A nil MaxParticipants means unbounded: Available is nil and IsFull false.
func CheckCapacity(event *entities.Event, count int64) entities.Capacity {
	if event.MaxParticipants == nil {
		return entities.Capacity{}
	}
	max := *event.MaxParticipants
	available := max - int(count)
	if available < 0 {
		available = 0
	}
	return entities.Capacity{
		Max:       &max,
		IsFull:    count >= int64(max),
		Available: &available,
	}
}
