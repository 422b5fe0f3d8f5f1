package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/models"
)

const (
	detailedTimeout = 5 * time.Second
	readyTimeout    = 3 * time.Second
)

// Info is the /ping body
type Info struct {
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func newInfo(app models.AppConfig) Info {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return Info{
		Service:     app.Name,
		Version:     app.Version,
		Environment: app.Environment,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
}

// RegisterHealthEndpoints registers /ping, /healthz and the /health group.
// /healthz answers {"ok":true} for controllers probing the portal from the
// walled garden and never touches dependencies.
func RegisterHealthEndpoints(e *echo.Echo, app models.AppConfig, hs *HealthService) {
	info := newInfo(app)

	e.GET("/ping", func(c echo.Context) error {
		body := info
		body.ServerTime = time.Now()
		return c.JSON(http.StatusOK, body)
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	g := e.Group("/health")
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   app.Name,
			"timestamp": time.Now(),
		})
	})
	g.GET("/detailed", func(c echo.Context) error {
		resp := check(c, hs, app, detailedTimeout)
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
	// Readiness gates traffic on postgres, redis and the bus
	g.GET("/ready", func(c echo.Context) error {
		resp := check(c, hs, app, readyTimeout)
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready", "service": app.Name})
	})
}

func check(c echo.Context, hs *HealthService, app models.AppConfig, timeout time.Duration) HealthResponse {
	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	resp := hs.CheckAllHealth(ctx)
	resp.Service = app.Name
	resp.Version = app.Version
	return resp
}
