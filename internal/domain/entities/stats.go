package entities

import "fmpa/internal/domain"

// Capacity is the remaining-room view of an event.
type Capacity struct {
	Max       *int `json:"max"`
	IsFull    bool `json:"isFull"`
	Available *int `json:"available"`
}

type MenuCount struct {
	Menu  string `json:"menu"`
	Count int64  `json:"count"`
}

type StatusBreakdown struct {
	Registered int64 `json:"registered"`
	Confirmed  int64 `json:"confirmed"`
	Present    int64 `json:"present"`
	Absent     int64 `json:"absent"`
	Excused    int64 `json:"excused"`
	Cancelled  int64 `json:"cancelled"`
}

// Get returns the count for s.
func (b StatusBreakdown) Get(s domain.ParticipationStatus) int64 {
	switch s {
	case domain.StatusRegistered:
		return b.Registered
	case domain.StatusConfirmed:
		return b.Confirmed
	case domain.StatusPresent:
		return b.Present
	case domain.StatusAbsent:
		return b.Absent
	case domain.StatusExcused:
		return b.Excused
	case domain.StatusCancelled:
		return b.Cancelled
	}
	return 0
}

type MealBreakdown struct {
	Total  int64       `json:"total"`
	ByMenu []MenuCount `json:"byMenu"`
}

// EventStats is the attendance summary of one event.
type EventStats struct {
	EventID          uint            `json:"eventId"`
	Total            int64           `json:"total"`
	ByStatus         StatusBreakdown `json:"byStatus"`
	Meals            MealBreakdown   `json:"meals"`
	AttendanceRate   float64         `json:"attendanceRate"`
	ConfirmationRate float64         `json:"confirmationRate"`
	MealRate         float64         `json:"mealRate"`
	Capacity         Capacity        `json:"capacity"`
}
