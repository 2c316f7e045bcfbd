package dogstore

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the relational store, repository, and dog service into Fx.
// The Store lifecycle closes the connection pool on shutdown.
var FXModule = fx.Module("dogstore",
	fx.Provide(
		NewConfig,
		NewStore,
		NewRepository,
		NewService,
	),
	fx.Invoke(registerStoreLifecycle),
)

func registerStoreLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
