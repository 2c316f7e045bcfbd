package embedding

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no embedding model is reachable and degraded
// mode is disabled.
var ErrUnavailable = errors.New("embedding: no model available")

// Provider computes image embeddings. Implementations must be deterministic
// for identical input under a fixed model version and safe for concurrent
// use.
type Provider interface {
	// EmbedImage returns the embedding of an image given as base64-encoded
	// bytes.
	EmbedImage(ctx context.Context, imageBase64 string) ([]float32, error)

	// Dimension reports the fixed vector length this provider produces.
	Dimension() int
}
