package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/ports/input"
)

type eventHandler struct {
	uc input.EventUseCase
}

func (h *eventHandler) create(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	var req createEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.uc.CreateEvent(c.Request().Context(), actor, req.toNewEvent())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newEventResponse(event, actor))
}

func (h *eventHandler) list(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	query, err := bindEventQuery(c)
	if err != nil {
		return err
	}
	events, err := h.uc.ListEvents(c.Request().Context(), actor, query)
	if err != nil {
		return err
	}
	res := make([]eventResponse, 0, len(events))
	for i := range events {
		res = append(res, newEventResponse(&events[i], actor))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *eventHandler) get(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	event, err := h.uc.GetEvent(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEventResponse(event, actor))
}

func (h *eventHandler) transition(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id", domain.ErrEventNotFound)
	if err != nil {
		return err
	}
	var req transitionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.uc.TransitionEvent(c.Request().Context(), actor, id, domain.EventStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEventResponse(event, actor))
}
