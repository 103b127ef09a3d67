package application

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
	"fmpa/pkg/tz"
)

var _ input.ExportUseCase = (*ExportService)(nil)

// DefaultExportFormat is used when a participant export names no format.
const DefaultExportFormat = "xlsx"

var participantsHeader = []string{
	"Nom", "Prénom", "Email", "Matricule", "Statut",
	"Inscription", "Pointage", "Validé par", "Validé le", "Motif", "Repas",
}

type ExportService struct {
	store   output.Store
	auditor output.Auditor
	writers map[string]output.SpreadsheetWriter
}

// NewExportService registers each writer under its file extension.
func NewExportService(store output.Store, auditor output.Auditor, writers ...output.SpreadsheetWriter) *ExportService {
	byFormat := make(map[string]output.SpreadsheetWriter, len(writers))
	for _, w := range writers {
		byFormat[w.Extension()] = w
	}
	return &ExportService{
		store:   store,
		auditor: auditor,
		writers: byFormat,
	}
}

// AttendanceSheet lists every non-cancelled participant with an empty signature column.
func (s *ExportService) AttendanceSheet(ctx context.Context, actor domain.Actor, eventID uint) (_ *entities.AttendanceSheet, err error) {
	ctx, span := startSpan(ctx, "export.AttendanceSheet", actor, eventAttr(eventID))
	defer func() { endSpan(span, err) }()

	event, details, err := s.load(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}

	rows := make([]entities.AttendanceRow, 0, len(details))
	for _, d := range details {
		if d.Status == domain.StatusCancelled {
			continue
		}
		rows = append(rows, entities.AttendanceRow{
			Name:        d.DisplayName(),
			Badge:       d.BadgeNumber,
			Present:     d.Status == domain.StatusPresent,
			CheckInTime: d.CheckInTime,
		})
	}

	if err := s.audit(ctx, actor, event, output.ExportAttendanceSheet); err != nil {
		return nil, err
	}
	return &entities.AttendanceSheet{Event: entities.HeaderOf(event), Rows: rows}, nil
}

// Participants encodes the full participant list in format (xlsx or csv).
func (s *ExportService) Participants(ctx context.Context, actor domain.Actor, eventID uint, format string) (_ *entities.ExportFile, err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultExportFormat
	}
	ctx, span := startSpan(ctx, "export.Participants", actor, eventAttr(eventID), attribute.String("export.format", format))
	defer func() { endSpan(span, err) }()

	writer, ok := s.writers[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat.WithDetail(format)
	}
	event, details, err := s.load(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}

	sheet := entities.Sheet{
		Name:   "Participants",
		Header: participantsHeader,
		Rows:   make([][]string, 0, len(details)),
	}
	for _, d := range details {
		menu := ""
		if d.HasMeal {
			menu = d.Menu
			if menu == "" {
				menu = "oui"
			}
		}
		sheet.Rows = append(sheet.Rows, []string{
			d.LastName,
			d.FirstName,
			d.Email,
			d.BadgeNumber,
			string(d.Status),
			tz.Format(d.RegisteredAt),
			tz.FormatPtr(d.CheckInTime),
			d.ValidatedBy,
			tz.FormatPtr(d.ValidatedAt),
			d.ExcuseReason,
			menu,
		})
	}

	var buf bytes.Buffer
	if err := writer.Write(&buf, sheet); err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	if err := s.audit(ctx, actor, event, output.ExportParticipants); err != nil {
		return nil, err
	}
	return &entities.ExportFile{
		Filename:    fmt.Sprintf("participants-%d.%s", event.ID, writer.Extension()),
		ContentType: writer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

// ManoeuvreReport summarizes a manoeuvre with its statistics and validated participants.
func (s *ExportService) ManoeuvreReport(ctx context.Context, actor domain.Actor, eventID uint) (_ *entities.ManoeuvreReport, err error) {
	ctx, span := startSpan(ctx, "export.ManoeuvreReport", actor, eventAttr(eventID))
	defer func() { endSpan(span, err) }()

	event, details, err := s.load(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}
	if event.Type != domain.EventManoeuvre {
		return nil, domain.ErrReportUnavailable
	}
	stats, err := computeStats(ctx, s.store.Repos(), event)
	if err != nil {
		return nil, err
	}

	participants := make([]entities.ReportParticipant, 0, len(details))
	for _, d := range details {
		switch d.Status {
		case domain.StatusPresent, domain.StatusAbsent, domain.StatusExcused:
			participants = append(participants, entities.ReportParticipant{
				Name:         d.DisplayName(),
				Badge:        d.BadgeNumber,
				Status:       d.Status,
				ExcuseReason: d.ExcuseReason,
			})
		}
	}

	if err := s.audit(ctx, actor, event, output.ExportManoeuvreReport); err != nil {
		return nil, err
	}
	return &entities.ManoeuvreReport{
		Event:        entities.HeaderOf(event),
		Stats:        stats,
		Participants: participants,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (s *ExportService) load(ctx context.Context, actor domain.Actor, eventID uint) (*entities.Event, []entities.ParticipantDetail, error) {
	if err := actor.Validate(); err != nil {
		return nil, nil, err
	}
	repos := s.store.Repos()
	event, err := loadVisibleEvent(ctx, repos.Events, actor, eventID)
	if err != nil {
		return nil, nil, err
	}
	if !actor.Can(domain.CapExportData) {
		return nil, nil, domain.ErrForbidden
	}
	details, err := repos.Participations.ListDetails(ctx, actor.TenantID, event.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list participants: %w", err)
	}
	return event, details, nil
}

func (s *ExportService) audit(ctx context.Context, actor domain.Actor, event *entities.Event, kind output.ExportKind) error {
	err := s.auditor.Record(ctx, output.AuditEntry{
		ActorID:  actor.ID,
		TenantID: actor.TenantID,
		EventID:  event.ID,
		Kind:     kind,
		At:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("audit %s export: %w", kind, err)
	}
	return nil
}
