// Package photostore archives the original uploaded photo bytes in
// S3-compatible object storage. The archive is best effort: callers log and
// continue when it is unavailable.
package photostore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// Client wraps a MinIO connection scoped to the photo bucket. A nil Client is
// a valid no-op archive, used when no endpoint is configured.
type Client struct {
	api    *minio.Client
	bucket string
	log    *logger.Logger
}

// NewClient connects to the object store and ensures the photo bucket
// exists. With no endpoint configured it returns nil, disabling archiving.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		log.Warn("photo archive disabled: MINIO_ENDPOINT not set", nil)
		return nil, nil
	}

	api, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("photostore: failed to create client: %w", err)
	}

	c := &Client{api: api, bucket: cfg.BucketName, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := c.ensureBucket(ctx, cfg); err != nil {
		return nil, err
	}

	log.Info("photo archive ready", map[string]any{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	})
	return c, nil
}

func (c *Client) ensureBucket(ctx context.Context, cfg *Config) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("photostore: failed to check bucket %q: %w", c.bucket, err)
	}
	if exists {
		return nil
	}
	if !cfg.CreateBucket {
		return fmt.Errorf("photostore: bucket %q does not exist", c.bucket)
	}
	if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
		return fmt.Errorf("photostore: failed to create bucket %q: %w", c.bucket, err)
	}
	return nil
}

// Put uploads an object. A nil Client silently drops the write.
func (c *Client) Put(ctx context.Context, objectKey string, data []byte, contentType string) error {
	if c == nil {
		return nil
	}
	_, err := c.api.PutObject(ctx, c.bucket, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("photostore: failed to put %q: %w", objectKey, err)
	}
	return nil
}

// Get retrieves an archived object's contents.
func (c *Client) Get(ctx context.Context, objectKey string) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("photostore: archive disabled")
	}
	obj, err := c.api.GetObject(ctx, c.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("photostore: failed to get %q: %w", objectKey, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("photostore: failed to read %q: %w", objectKey, err)
	}
	return data, nil
}
