package httpapi

import "os"

// Config holds the HTTP server settings.
type Config struct {
	Address string `yaml:"address" env:"HTTP_ADDR"`
}

// NewConfig builds the Config from environment variables.
func NewConfig() *Config {
	cfg := &Config{Address: ":8000"}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Address = v
	}
	return cfg
}
