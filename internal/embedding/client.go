package embedding

import (
	"context"
	"fmt"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// Client is the public entrypoint for computing embeddings. It hides the
// provider selection (inference endpoint vs degraded placeholder) from the
// application layer.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config. With an endpoint configured it
// uses the inference provider; without one it falls back to the placeholder
// unless Required is set, in which case construction fails with
// ErrUnavailable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		if cfg.Required {
			return nil, fmt.Errorf("%w: EMBEDDING_ENDPOINT not set and EMBEDDING_REQUIRED=true", ErrUnavailable)
		}
		return &Client{provider: newPlaceholderProvider(log)}, nil
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	log.Info("embedding inference provider ready", map[string]any{
		"endpoint": cfg.Endpoint,
		"model":    cfg.Model,
	})
	return &Client{provider: p}, nil
}

// EmbedImage delegates to the active provider.
func (c *Client) EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error) {
	return c.provider.EmbedImage(ctx, imageBase64)
}

// Dimension reports the active provider's vector length.
func (c *Client) Dimension() int {
	return c.provider.Dimension()
}
