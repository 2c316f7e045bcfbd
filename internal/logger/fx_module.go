package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the logger into an Fx application. It provides the Config
// (from environment) and the *Logger, and registers a shutdown hook that
// flushes buffered entries.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewConfig,
		NewLogger,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the underlying Zap logger on application
// stop so no buffered entries are lost.
func RegisterLoggerLifecycle(lc fx.Lifecycle, l *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on stderr returns EINVAL on some platforms; losing the
			// error is preferable to failing shutdown.
			_ = l.Zap.Sync()
			return nil
		},
	})
}
