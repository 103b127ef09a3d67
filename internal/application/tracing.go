package application

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/domain/policy"
	"fmpa/internal/ports/output"
)

var tracer = otel.Tracer("fmpa/internal/application")

func startSpan(ctx context.Context, name string, actor domain.Actor, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs,
		attribute.String("actor.id", actor.ID),
		attribute.String("actor.tenant_id", actor.TenantID),
		attribute.String("actor.role", string(actor.Role)),
	)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func eventAttr(id uint) attribute.KeyValue {
	return attribute.Int64("event.id", int64(id))
}

// loadVisibleEvent returns the event when actor may see it, ErrEventNotFound otherwise.
func loadVisibleEvent(ctx context.Context, events output.EventRepository, actor domain.Actor, id uint) (*entities.Event, error) {
	event, err := events.FindByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, event) {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func notify(ctx context.Context, n output.Notifier, notification output.Notification) {
	if n == nil {
		return
	}
	if err := n.Notify(ctx, notification); err != nil {
		log.Printf("⚠️ notification %s (event=%d): %v", notification.Kind, notification.Event.ID, err)
	}
}
