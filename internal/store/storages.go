package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-board/internal/config"
	"github.com/MKhiriev/go-job-board/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository        UserRepository
	CompanyRepository     CompanyRepository
	JobRepository         JobRepository
	ApplicationRepository ApplicationRepository
	OTPStorage            OTPStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories. Recovery codes go to Redis when an address is configured,
// otherwise they are kept in the users table.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	s := &Storages{
		UserRepository:        NewUserRepository(db, log),
		CompanyRepository:     NewCompanyRepository(db, log),
		JobRepository:         NewJobRepository(db, log),
		ApplicationRepository: NewApplicationRepository(db, log),
		OTPStorage:            NewPostgresOTPStorage(db),
		db:                    db,
	}

	if cfg.Storage.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		s.redis = client
		s.OTPStorage = NewRedisOTPStorage(client)
	}

	return s, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
