package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/ports/input"
)

type exportHandler struct {
	uc input.ExportUseCase
}

func (h *exportHandler) attendanceSheet(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	sheet, err := h.uc.AttendanceSheet(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sheet)
}

func (h *exportHandler) participants(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	file, err := h.uc.Participants(c.Request().Context(), actor, id, c.QueryParam("format"))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Content)
}

func (h *exportHandler) manoeuvreReport(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	report, err := h.uc.ManoeuvreReport(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
