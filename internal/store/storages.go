package store

import (
	"context"
	"fmt"

	"github.com/rkhasanov/photoshare/internal/config"
	"github.com/rkhasanov/photoshare/internal/logger"
)

// Storages bundles every repository together with the database handle they
// share. The handle is owned here: callers open it via [NewStorages] at
// startup and release it with [Storages.Close] on shutdown.
type Storages struct {
	UserRepository  UserRepository
	PhotoRepository PhotoRepository

	db *DB
}

// NewStorages opens the database selected by cfg, applies schema migrations,
// and wires up the repositories for that backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case driverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case driverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	if db.driver == driverSQLite {
		storages.PhotoRepository = NewSQLitePhotoRepository(db, log)
	} else {
		storages.PhotoRepository = NewPhotoRepository(db, log)
	}

	return storages, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}
