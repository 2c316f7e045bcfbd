package dogstore

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AlexPavAi/dog-finder/internal/logger"
)

// Store wraps the gorm connection to the dogfinder database.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewStore connects to PostgreSQL, configures the connection pool, and
// migrates the dog tables.
func NewStore(cfg *Config, log *logger.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("dogstore: failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("dogstore: failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&Dog{}, &DogImage{}); err != nil {
		return nil, fmt.Errorf("dogstore: migration failed: %w", err)
	}

	log.Info("connected to dogfinder database", map[string]any{
		"host":   cfg.Host,
		"dbName": cfg.DBName,
	})
	return &Store{db: db, log: log}, nil
}

// DB exposes the underlying gorm handle for the repository layer.
func (s *Store) DB() *gorm.DB { return s.db }

// HealthCheck pings the database with a short timeout.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("dogstore: failed to get database handle: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("dogstore: database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
