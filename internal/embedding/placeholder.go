package embedding

import (
	"context"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// placeholderProvider keeps the system operable when no model endpoint is
// configured. Every call returns the same constant zero vector: result
// ranking degrades to filter-only relevance, which is accepted for
// offline/development deployments.
type placeholderProvider struct {
	log *logger.Logger
}

func newPlaceholderProvider(log *logger.Logger) *placeholderProvider {
	log.Warn("embedding model unavailable, using placeholder vectors", map[string]any{
		"dimension": Dimension,
	})
	return &placeholderProvider{log: log}
}

// EmbedImage returns the constant placeholder vector. The degraded condition
// is logged per call so it never passes unnoticed in production traffic.
func (p *placeholderProvider) EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error) {
	p.log.Warn("embedding degraded: returning placeholder vector", nil)
	return make([]float32, Dimension), nil
}

// Dimension reports the placeholder vector length, matching the real model.
func (p *placeholderProvider) Dimension() int { return Dimension }
