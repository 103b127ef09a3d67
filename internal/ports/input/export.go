package input

import (
	"context"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type ExportUseCase interface {
	AttendanceSheet(ctx context.Context, actor domain.Actor, eventID uint) (*entities.AttendanceSheet, error)
	Participants(ctx context.Context, actor domain.Actor, eventID uint, format string) (*entities.ExportFile, error)
	ManoeuvreReport(ctx context.Context, actor domain.Actor, eventID uint) (*entities.ManoeuvreReport, error)
}
