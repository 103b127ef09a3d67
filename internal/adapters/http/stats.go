package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/ports/input"
)

type statsHandler struct {
	uc input.StatsUseCase
}

func (h *statsHandler) event(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	stats, err := h.uc.EventStats(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
