package httpapi

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/domain/entities"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bindAndValidate decodes the request body into req and validates its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// pathID parses a numeric path parameter; malformed ids are reported as notFound.
func pathID(c echo.Context, name string, notFound error) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, notFound
	}
	return uint(id), nil
}

type createEventRequest struct {
	Type            string    `json:"type" validate:"required,oneof=FORMATION MANOEUVRE PRESENCE_ACTIVE"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"max=4000"`
	Location        string    `json:"location" validate:"max=200"`
	StartsAt        time.Time `json:"startsAt" validate:"required"`
	EndsAt          time.Time `json:"endsAt" validate:"required,gtfield=StartsAt"`
	MaxParticipants *int      `json:"maxParticipants" validate:"omitempty,min=1"`
	Catering        bool      `json:"catering"`
	Menus           []string  `json:"menus" validate:"dive,max=100"`
}

func (r createEventRequest) toNewEvent() entities.NewEvent {
	return entities.NewEvent{
		Type:            domain.EventType(r.Type),
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		MaxParticipants: r.MaxParticipants,
		Catering:        r.Catering,
		Menus:           r.Menus,
	}
}

// bindEventQuery reads the listing filters from the query string.
func bindEventQuery(c echo.Context) (entities.EventQuery, error) {
	var (
		q             entities.EventQuery
		typ, status   string
		from, to      time.Time
		limit, offset int
	)
	err := echo.QueryParamsBinder(c).
		String("type", &typ).
		String("status", &status).
		Time("from", &from, time.RFC3339).
		Time("to", &to, time.RFC3339).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return q, domain.ErrInvalidEvent.WithDetail("invalid query: " + err.Error())
	}
	if typ != "" {
		t := domain.EventType(typ)
		if !t.Valid() {
			return q, domain.ErrInvalidEvent.WithDetail("unknown type " + typ)
		}
		q.Type = &t
	}
	if status != "" {
		s := domain.EventStatus(status)
		if !s.Valid() {
			return q, domain.ErrInvalidEvent.WithDetail("unknown status " + status)
		}
		q.Status = &s
	}
	if !from.IsZero() {
		q.From = &from
	}
	if !to.IsZero() {
		q.To = &to
	}
	q.Limit, q.Offset = limit, offset
	return q, nil
}

type transitionRequest struct {
	Status string `json:"status" validate:"required"`
}

// registerRequest: a missing menu means no meal, an empty one a meal without preference.
type registerRequest struct {
	Menu *string `json:"menu" validate:"omitempty,max=100"`
}

type validateRequest struct {
	Status       string `json:"status" validate:"required"`
	ExcuseReason string `json:"excuseReason" validate:"max=500"`
}

type checkInRequest struct {
	Code string `json:"code" validate:"required"`
}

type personnelRequest struct {
	FirstName   string `json:"firstName" validate:"max=100"`
	LastName    string `json:"lastName" validate:"required,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	BadgeNumber string `json:"badgeNumber" validate:"max=50"`
}
