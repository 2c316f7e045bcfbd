package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// NewServer builds the echo instance with recovery and CORS middleware and
// mounts the dogfinder routes.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.Register(e)
	return e
}

// RegisterServerLifecycle starts the HTTP server with the application and
// shuts it down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, e *echo.Echo, cfg *Config, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", map[string]any{"address": cfg.Address})
				if err := e.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
