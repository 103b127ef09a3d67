// Package httpapi exposes the FMPA use cases over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"fmpa/internal/ports/input"
	"fmpa/internal/ports/output"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		JWTSecret      string
		RateLimit      float64
		RateBurst      int

		Translator output.T
		Reporter   output.ErrorReporter

		Events         input.EventUseCase
		Participations input.ParticipationUseCase
		Stats          input.StatsUseCase
		Exports        input.ExportUseCase
		Personnel      input.PersonnelUseCase
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestID())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.Recover())

	s.app.HTTPErrorHandler = newHTTPErrorHandler(s.opts.Translator, s.opts.Reporter)
	s.app.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	s.app.GET("/healthz", healthz)

	v1 := s.app.Group("/v1", authMiddleware([]byte(s.opts.JWTSecret)))
	limit := rateLimitMiddleware(s.opts.RateLimit, s.opts.RateBurst)

	events := &eventHandler{uc: s.opts.Events}
	v1.POST("/events", events.create)
	v1.GET("/events", events.list)
	v1.GET("/events/:id", events.get)
	v1.POST("/events/:id/transition", events.transition)

	participations := &participationHandler{uc: s.opts.Participations}
	v1.POST("/events/:id/participations", participations.register, limit)
	v1.POST("/events/:id/participations/:pid/validate", participations.validate)
	v1.POST("/events/:id/participations/:pid/cancel", participations.cancel)
	v1.POST("/check-in", participations.checkIn, limit)

	stats := &statsHandler{uc: s.opts.Stats}
	v1.GET("/events/:id/stats", stats.event)

	exports := &exportHandler{uc: s.opts.Exports}
	v1.GET("/events/:id/exports/attendance-sheet", exports.attendanceSheet)
	v1.GET("/events/:id/exports/participants", exports.participants)
	v1.GET("/events/:id/exports/manoeuvre-report", exports.manoeuvreReport)

	personnel := &personnelHandler{uc: s.opts.Personnel}
	v1.PUT("/personnel/:userId", personnel.upsert)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
