package output

import (
	"context"
	"time"
)

type ExportKind string

const (
	ExportAttendanceSheet ExportKind = "attendance_sheet"
	ExportParticipants    ExportKind = "participants"
	ExportManoeuvreReport ExportKind = "manoeuvre_report"
)

type AuditEntry struct {
	ActorID  string
	TenantID string
	EventID  uint
	Kind     ExportKind
	At       time.Time
}

// Auditor records audited actions.
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry) error
}
