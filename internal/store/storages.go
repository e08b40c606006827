package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-captioner/internal/config"
	"github.com/MKhiriev/go-captioner/internal/logger"
)

// Storages groups the repositories used by the service layer. They share a
// single database connection owned by the container.
type Storages struct {
	UserRepository    UserRepository
	CaptionRepository CaptionRepository

	db *DB
}

// NewStorages connects to the database selected by cfg, applies migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		CaptionRepository: NewCaptionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
