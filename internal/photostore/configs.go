package photostore

import "os"

// Config holds the object storage connection settings for the photo archive.
type Config struct {
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"accessKeyId" env:"MINIO_ACCESS_KEY"`
	SecretAccessKey string `yaml:"secretAccessKey" env:"MINIO_SECRET_KEY"`
	UseSSL          bool   `yaml:"useSSL" env:"MINIO_USE_SSL"`
	Region          string `yaml:"region" env:"MINIO_REGION"`
	BucketName      string `yaml:"bucketName" env:"MINIO_BUCKET"`
	CreateBucket    bool   `yaml:"createBucket" env:"MINIO_CREATE_BUCKET"`
}

// NewConfig builds the Config from MINIO_* environment variables. An empty
// endpoint disables the archive entirely.
func NewConfig() *Config {
	return &Config{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
		UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		Region:          os.Getenv("MINIO_REGION"),
		BucketName:      envOr("MINIO_BUCKET", "dogfinder-photos"),
		CreateBucket:    os.Getenv("MINIO_CREATE_BUCKET") != "false",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
