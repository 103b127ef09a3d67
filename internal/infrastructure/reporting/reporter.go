// Package reporting forwards unexpected errors to an error tracker.
package reporting

import (
	"context"
	"log"

	"github.com/rollbar/rollbar-go"

	"fmpa/internal/domain"
	"fmpa/internal/ports/output"
)

var (
	_ output.ErrorReporter = (*RollbarReporter)(nil)
	_ output.ErrorReporter = LogReporter{}
)

// RollbarReporter sends errors to Rollbar asynchronously.
type RollbarReporter struct {
	client *rollbar.Client
}

func NewRollbarReporter(token, environment, codeVersion string) *RollbarReporter {
	client := rollbar.NewAsync(token, environment, codeVersion, "", "")
	return &RollbarReporter{client: client}
}

func (r *RollbarReporter) Report(ctx context.Context, err error, actor *domain.Actor) {
	extras := map[string]any{}
	if actor != nil {
		ctx = rollbar.NewPersonContext(ctx, &rollbar.Person{Id: actor.ID})
		extras["tenant_id"] = actor.TenantID
		extras["role"] = string(actor.Role)
	}
	r.client.ErrorWithExtrasAndContext(ctx, rollbar.ERR, err, extras)
}

// Close flushes pending reports.
func (r *RollbarReporter) Close() error {
	return r.client.Close()
}

// LogReporter logs errors when no tracker is configured.
type LogReporter struct{}

func (LogReporter) Report(_ context.Context, err error, actor *domain.Actor) {
	if actor != nil {
		log.Printf("❌ erreur interne (tenant=%s, actor=%s): %v", actor.TenantID, actor.ID, err)
		return
	}
	log.Printf("❌ erreur interne: %v", err)
}
