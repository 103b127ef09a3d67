package audit

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmpa/internal/ports/output"
)

func TestLogAuditor(t *testing.T) {
	var buf bytes.Buffer
	a := NewLogAuditor(log.New(&buf, "", 0))

	err := a.Record(context.Background(), output.AuditEntry{
		ActorID:  "chef-1",
		TenantID: "sdis-01",
		EventID:  42,
		Kind:     output.ExportParticipants,
		At:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "🗂️ export participants: tenant=sdis-01 event=42 actor=chef-1 at=2026-03-01T10:00:00Z\n", buf.String())
}
