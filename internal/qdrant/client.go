package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// Adapter wraps the official Qdrant Go client and implements
// vectordb.Service. It is safe for concurrent use.
type Adapter struct {
	api *qdrant.Client
	cfg *Config
	log *logger.Logger
}

const defaultBatchSize = 200 // chunk size for batch upserts

// NewAdapter constructs the adapter and validates connectivity via a health
// check, failing fast if the service is unreachable.
func NewAdapter(cfg *Config, log *logger.Logger) (*Adapter, error) {
	port := cfg.Port
	if port == 0 {
		port = 6334
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant: failed to initialize client: %w", err)
	}

	a := &Adapter{api: client, cfg: cfg, log: log}
	if err := a.healthCheck(); err != nil {
		return nil, fmt.Errorf("qdrant: health check failed: %w", err)
	}

	log.Info("connected to qdrant", map[string]any{
		"endpoint": cfg.Endpoint,
		"port":     port,
	})
	return a, nil
}

// healthCheck verifies the availability of the Qdrant service. Lightweight,
// used during startup and readiness probes.
func (a *Adapter) healthCheck() error {
	if a.api == nil {
		return fmt.Errorf("qdrant: client not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := a.api.HealthCheck(ctx); err != nil {
		return err
	}
	return nil
}

// Close gracefully shuts down the adapter. The Qdrant SDK keeps no
// persistent connections, so this exists for lifecycle symmetry.
func (a *Adapter) Close() error {
	return nil
}
