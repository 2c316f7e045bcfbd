package embedding

import (
	"os"
	"strconv"
)

// Dimension of the vectors produced by the deployed CLIP image model. The
// placeholder provider emits vectors of the same length so collections never
// mix dimensions.
const Dimension = 512

// Config holds the inference endpoint settings.
//
// EMBEDDING_ENDPOINT must point to the root of the OpenAI-compatible
// inference service (no /embeddings suffix); the client appends paths
// itself.
type Config struct {
	Endpoint     string // base URL of the inference API; empty enables degraded mode
	ServiceToken string // bearer token for the inference service
	Model        string // model identifier, default clip-ViT-B-32
	HTTPTimeoutS int    // HTTP timeout in seconds, default 30

	// Required disables the placeholder fallback: with no usable endpoint
	// the provider constructor fails with ErrUnavailable instead of
	// degrading.
	Required bool
}

// NewConfig reads the embedding configuration from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = "clip-ViT-B-32"
	}

	required, _ := strconv.ParseBool(os.Getenv("EMBEDDING_REQUIRED"))

	return &Config{
		Endpoint:     os.Getenv("EMBEDDING_ENDPOINT"),
		ServiceToken: os.Getenv("EMBEDDING_SERVICE_TOKEN"),
		Model:        model,
		HTTPTimeoutS: timeout,
		Required:     required,
	}
}
