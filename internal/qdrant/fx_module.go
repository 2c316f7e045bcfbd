package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// FXModule wires the Qdrant adapter into Fx. It provides the Config (from
// environment), the concrete *Adapter, and the vectordb.Service interface
// binding consumed by the application layer.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewConfig,
		NewAdapter,
		func(a *Adapter) vectordb.Service { return a },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// RegisterQdrantLifecycle closes the adapter on application shutdown.
func RegisterQdrantLifecycle(lc fx.Lifecycle, a *Adapter) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return a.Close()
		},
	})
}
