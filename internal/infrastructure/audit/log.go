// Package audit records data exports.
package audit

import (
	"context"
	"log"
	"time"

	"fmpa/internal/ports/output"
)

var _ output.Auditor = (*LogAuditor)(nil)

// LogAuditor writes one log line per export.
type LogAuditor struct {
	logger *log.Logger
}

// NewLogAuditor logs to logger, or to the standard logger when nil.
func NewLogAuditor(logger *log.Logger) *LogAuditor {
	if logger == nil {
		logger = log.Default()
	}
	return &LogAuditor{logger: logger}
}

func (a *LogAuditor) Record(_ context.Context, entry output.AuditEntry) error {
	a.logger.Printf("🗂️ export %s: tenant=%s event=%d actor=%s at=%s",
		entry.Kind, entry.TenantID, entry.EventID, entry.ActorID, entry.At.Format(time.RFC3339))
	return nil
}
