package domain

// EventType is the kind of FMPA.
type EventType string

const (
	EventFormation      EventType = "FORMATION"
	EventManoeuvre      EventType = "MANOEUVRE"
	EventPresenceActive EventType = "PRESENCE_ACTIVE"
)

func (t EventType) Valid() bool {
	switch t {
	case EventFormation, EventManoeuvre, EventPresenceActive:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventDraft      EventStatus = "DRAFT"
	EventPublished  EventStatus = "PUBLISHED"
	EventInProgress EventStatus = "IN_PROGRESS"
	EventCompleted  EventStatus = "COMPLETED"
	EventCancelled  EventStatus = "CANCELLED"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventPublished, EventInProgress, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s EventStatus) Terminal() bool {
	return s == EventCompleted || s == EventCancelled
}

// ParticipationStatus is the state of a user's registration to an event.
type ParticipationStatus string

const (
	StatusRegistered ParticipationStatus = "REGISTERED"
	StatusConfirmed  ParticipationStatus = "CONFIRMED"
	StatusPresent    ParticipationStatus = "PRESENT"
	StatusAbsent     ParticipationStatus = "ABSENT"
	StatusExcused    ParticipationStatus = "EXCUSED"
	StatusCancelled  ParticipationStatus = "CANCELLED"
)

// ParticipationStatuses lists every participation status in reporting order.
var ParticipationStatuses = []ParticipationStatus{
	StatusRegistered,
	StatusConfirmed,
	StatusPresent,
	StatusAbsent,
	StatusExcused,
	StatusCancelled,
}

func (s ParticipationStatus) Valid() bool {
	for _, v := range ParticipationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidationTarget reports whether s can be set by a presence validation.
func (s ParticipationStatus) IsValidationTarget() bool {
	switch s {
	case StatusConfirmed, StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}
