package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

var errRateLimited = echo.NewHTTPError(http.StatusTooManyRequests, "rate_limited")

// rateLimitMiddleware limits requests per authenticated actor.
func rateLimitMiddleware(limit float64, burst int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			actor, err := contextActor(c)
			if err != nil {
				return "", err
			}
			return actor.TenantID + "/" + actor.ID, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return err
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return errRateLimited
		},
	})
}
