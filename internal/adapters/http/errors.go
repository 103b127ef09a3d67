package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"fmpa/internal/domain"
	"fmpa/internal/infrastructure/i18n"
	"fmpa/internal/ports/output"
)

const (
	codeInvalidRequest = "invalid_request"
	codeRateLimited    = "rate_limited"
	codeInternal       = "internal"
)

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Detail  string            `json:"detail,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindUnauthorized:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// newHTTPErrorHandler maps domain error kinds to statuses and codes to localized
// messages. Anything that is not a known error is reported and hidden behind a 500.
func newHTTPErrorHandler(t output.T, reporter output.ErrorReporter) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		locale := c.Request().Header.Get("Accept-Language")
		localize := func(code, fallback string) string {
			key := i18n.ErrorKey(code)
			if t == nil {
				return fallback
			}
			if msg := t.T(locale, key, nil); msg != key {
				return msg
			}
			return fallback
		}

		var (
			status int
			body   errorBody
			de     *domain.Error
			ve     validator.ValidationErrors
			he     *echo.HTTPError
		)
		switch {
		case errors.As(err, &de):
			status = statusOf(de.Kind)
			body = errorBody{Code: de.Code, Message: localize(de.Code, de.Message), Detail: de.Detail}
		case errors.As(err, &ve):
			fields := make(map[string]string, len(ve))
			for _, fe := range ve {
				fields[fe.Field()] = fe.Tag()
			}
			status = http.StatusBadRequest
			body = errorBody{Code: codeInvalidRequest, Message: localize(codeInvalidRequest, "invalid request"), Fields: fields}
		case errors.As(err, &he):
			status = he.Code
			switch {
			case he.Code == http.StatusTooManyRequests:
				body = errorBody{Code: codeRateLimited, Message: localize(codeRateLimited, http.StatusText(he.Code))}
			case he.Code == http.StatusNotFound:
				body = errorBody{Code: "not_found", Message: http.StatusText(he.Code)}
			case he.Code == http.StatusMethodNotAllowed:
				body = errorBody{Code: "method_not_allowed", Message: http.StatusText(he.Code)}
			case he.Code < http.StatusInternalServerError:
				body = errorBody{Code: codeInvalidRequest, Message: localize(codeInvalidRequest, http.StatusText(he.Code))}
			default:
				status = http.StatusInternalServerError
			}
		default:
			status = http.StatusInternalServerError
		}

		if status == http.StatusInternalServerError {
			body = errorBody{Code: codeInternal, Message: localize(codeInternal, http.StatusText(status))}
			var actor *domain.Actor
			if a, aErr := contextActor(c); aErr == nil {
				actor = &a
			}
			if reporter != nil {
				reporter.Report(c.Request().Context(), err, actor)
			} else {
				log.Printf("❌ %s %s: %v", c.Request().Method, c.Path(), err)
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Error: body})
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
