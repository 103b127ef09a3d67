package application_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fmpa/internal/application"
	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/infrastructure/spreadsheet"
	"fmpa/internal/infrastructure/sqlite"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

const tenant = "sdis-01"

type recordingNotifier struct {
	mu   sync.Mutex
	sent []output.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification output.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) kinds() []output.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]output.NotificationKind, 0, len(n.sent))
	for _, s := range n.sent {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

type recordingAuditor struct {
	entries []output.AuditEntry
	err     error
}

func (a *recordingAuditor) Record(_ context.Context, entry output.AuditEntry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, entry)
	return nil
}

type fixture struct {
	store          *sqlite.Store
	notifier       *recordingNotifier
	auditor        *recordingAuditor
	events         *application.EventService
	participations *application.ParticipationService
	stats          *application.StatsService
	exports        *application.ExportService
	personnel      *application.PersonnelService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	f := &fixture{
		store:    store,
		notifier: &recordingNotifier{},
		auditor:  &recordingAuditor{},
	}
	f.events = application.NewEventService(store, f.notifier)
	f.participations = application.NewParticipationService(store, f.notifier)
	f.stats = application.NewStatsService(store)
	f.exports = application.NewExportService(store, f.auditor, spreadsheet.XLSXWriter{}, spreadsheet.CSVWriter{})
	f.personnel = application.NewPersonnelService(store)
	return f
}

func actor(t *testing.T, id string, role domain.Role) domain.Actor {
	t.Helper()
	return actorIn(t, id, tenant, role)
}

func actorIn(t *testing.T, id, tenantID string, role domain.Role) domain.Actor {
	t.Helper()
	a, err := domain.NewActor(id, tenantID, string(role))
	require.NoError(t, err)
	return a
}

type eventOption func(*entities.NewEvent)

func withCapacity(max int) eventOption {
	return func(ne *entities.NewEvent) { ne.MaxParticipants = &max }
}

func withMenus(menus ...string) eventOption {
	return func(ne *entities.NewEvent) {
		ne.Catering = true
		ne.Menus = menus
	}
}

func withType(typ domain.EventType) eventOption {
	return func(ne *entities.NewEvent) { ne.Type = typ }
}

// draftEvent creates a DRAFT manoeuvre as a manager of the default tenant.
func (f *fixture) draftEvent(t *testing.T, opts ...eventOption) *entities.Event {
	t.Helper()
	start := time.Date(2026, 11, 14, 8, 0, 0, 0, time.UTC)
	ne := entities.NewEvent{
		Type:     domain.EventManoeuvre,
		Title:    "Manœuvre feux urbains",
		Location: "CIS Centre",
		StartsAt: start,
		EndsAt:   start.Add(4 * time.Hour),
	}
	for _, opt := range opts {
		opt(&ne)
	}
	e, err := f.events.CreateEvent(context.Background(), actor(t, "manager", domain.RoleManager), ne)
	require.NoError(t, err)
	return e
}

func (f *fixture) publishedEvent(t *testing.T, opts ...eventOption) *entities.Event {
	t.Helper()
	e := f.draftEvent(t, opts...)
	return f.transition(t, e, domain.EventPublished)
}

func (f *fixture) transition(t *testing.T, e *entities.Event, target domain.EventStatus) *entities.Event {
	t.Helper()
	updated, err := f.events.TransitionEvent(context.Background(), actor(t, "manager", domain.RoleManager), e.ID, target)
	require.NoError(t, err)
	return updated
}

func (f *fixture) register(t *testing.T, e *entities.Event, userID string, menu ...string) *entities.Participation {
	t.Helper()
	var reg input.Registration
	if len(menu) > 0 {
		reg.Menu = &menu[0]
	}
	p, err := f.participations.Register(context.Background(), actor(t, userID, domain.RoleUser), e.ID, reg)
	require.NoError(t, err)
	return p
}

func (f *fixture) validate(t *testing.T, p *entities.Participation, target domain.ParticipationStatus, reason string) *entities.Participation {
	t.Helper()
	updated, err := f.participations.Validate(context.Background(), actor(t, "chef", domain.RoleChef), p.EventID, p.ID, target, reason)
	require.NoError(t, err)
	return updated
}
