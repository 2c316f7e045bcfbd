// Command dogfinder runs the lost-and-found dog matching service: an HTTP
// API over a vector similarity search of dog photos, backed by Qdrant,
// PostgreSQL, and an optional photo archive.
package main

import (
	"context"

	"go.uber.org/fx"

	"github.com/AlexPavAi/dog-finder/internal/dogstore"
	"github.com/AlexPavAi/dog-finder/internal/embedding"
	"github.com/AlexPavAi/dog-finder/internal/httpapi"
	"github.com/AlexPavAi/dog-finder/internal/logger"
	"github.com/AlexPavAi/dog-finder/internal/metrics"
	"github.com/AlexPavAi/dog-finder/internal/photostore"
	"github.com/AlexPavAi/dog-finder/internal/qdrant"
	"github.com/AlexPavAi/dog-finder/internal/search"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

func main() {
	fx.New(
		logger.FXModule,
		metrics.FXModule,
		qdrant.FXModule,
		embedding.FXModule,
		dogstore.FXModule,
		photostore.FXModule,
		search.FXModule,
		httpapi.FXModule,
		fx.Invoke(ensureVectorSchema),
	).Run()
}

// ensureVectorSchema creates the dog collection and its payload indexes
// before the HTTP server starts accepting traffic.
func ensureVectorSchema(lc fx.Lifecycle, vdb vectordb.Service, provider embedding.Provider, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			schema := dogstore.VectorSchema(uint64(provider.Dimension()))
			if err := vdb.EnsureSchema(ctx, schema); err != nil {
				return err
			}
			log.Info("vector schema ready", map[string]any{
				"collection": schema.Collection,
				"vectorSize": schema.VectorSize,
			})
			return nil
		},
	})
}
