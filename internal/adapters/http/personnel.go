package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fmpa/internal/domain/entities"
	"fmpa/internal/ports/input"
)

type personnelHandler struct {
	uc input.PersonnelUseCase
}

func (h *personnelHandler) upsert(c echo.Context) error {
	actor, err := contextActor(c)
	if err != nil {
		return err
	}
	var req personnelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	user, err := h.uc.UpsertUser(c.Request().Context(), actor, entities.User{
		ID:          c.Param("userId"),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		BadgeNumber: req.BadgeNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		BadgeNumber: user.BadgeNumber,
		UpdatedAt:   user.UpdatedAt,
	})
}
