package api

import (
	"net/http"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const ReadinessPath = "/ready"

// HealthCheck reports the service as ready once the database answered at startup
type HealthCheck struct {
	ready atomic.Bool
}

func NewHealthCheck() *HealthCheck {
	return &HealthCheck{}
}

func (h *HealthCheck) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *HealthCheck) Ready(c echo.Context) error {
	status := http.StatusBadRequest
	if h.ready.Load() {
		status = http.StatusOK
	}
	return c.NoContent(status)
}

// RouteSkipper matches requests by their registered route path
func RouteSkipper(paths ...string) middleware.Skipper {
	skipped := mapset.NewSet(paths...)
	return func(c echo.Context) bool {
		return skipped.Contains(c.Path())
	}
}

func WithSkipper(skipper middleware.Skipper, m echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := m(next)
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			return wrapped(c)
		}
	}
}
