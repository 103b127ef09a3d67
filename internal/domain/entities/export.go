package entities

import (
	"time"

	"fmpa/internal/domain"
)

// EventHeader is the event metadata printed on every export.
type EventHeader struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Type     domain.EventType `json:"type"`
	StartsAt time.Time        `json:"startsAt"`
	EndsAt   time.Time        `json:"endsAt"`
	Location string           `json:"location"`
}

func HeaderOf(e *Event) EventHeader {
	return EventHeader{
		ID:       e.ID,
		Title:    e.Title,
		Type:     e.Type,
		StartsAt: e.StartsAt,
		EndsAt:   e.EndsAt,
		Location: e.Location,
	}
}

type AttendanceRow struct {
	Name        string     `json:"name"`
	Badge       string     `json:"badge"`
	Present     bool       `json:"present"`
	CheckInTime *time.Time `json:"checkInTime"`
	Signature   string     `json:"signature"`
}

// AttendanceSheet is the data a client renders into the signed attendance document.
type AttendanceSheet struct {
	Event EventHeader     `json:"event"`
	Rows  []AttendanceRow `json:"rows"`
}

type ReportParticipant struct {
	Name         string                     `json:"name"`
	Badge        string                     `json:"badge"`
	Status       domain.ParticipationStatus `json:"status"`
	ExcuseReason string                     `json:"excuseReason,omitempty"`
}

// ManoeuvreReport is the supervisory summary of a manoeuvre.
type ManoeuvreReport struct {
	Event        EventHeader         `json:"event"`
	Stats        EventStats          `json:"stats"`
	Participants []ReportParticipant `json:"participants"`
	GeneratedAt  time.Time           `json:"generatedAt"`
}

// Sheet is a format-agnostic table.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ExportFile is an encoded export ready to be served.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
