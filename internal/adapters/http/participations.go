package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/ports/input"
)

type participationHandler struct {
	uc input.ParticipationUseCase
}

func (h *participationHandler) register(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	eventID, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.uc.Register(c.Request().Context(), actor, eventID, input.Registration{Menu: req.Menu})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newParticipationResponse(p))
}

func (h *participationHandler) validate(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	eventID, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	pid, err := pathID(c, "pid", domain.ErrParticipationNotFound)
	if err != nil {
		return err
	}
	var req validateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.uc.Validate(c.Request().Context(), actor, eventID, pid, domain.ParticipationStatus(req.Status), req.ExcuseReason)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newParticipationResponse(p))
}

func (h *participationHandler) cancel(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	eventID, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	pid, err := pathID(c, "pid", domain.ErrParticipationNotFound)
	if err != nil {
		return err
	}
	p, err := h.uc.Cancel(c.Request().Context(), actor, eventID, pid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newParticipationResponse(p))
}

func (h *participationHandler) checkIn(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	var req checkInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	p, err := h.uc.CheckIn(c.Request().Context(), actor, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newParticipationResponse(p))
}
