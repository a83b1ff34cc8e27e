package store

import (
	"database/sql"

	"github.com/rkhasanov/photoshare/internal/logger"
	"github.com/rkhasanov/photoshare/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name it was
// opened with. It is passed explicitly to repositories; there is no ambient
// global connection.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations appropriate for the driver
// this handle was opened with.
func (db *DB) Migrate() error {
	if db.driver == driverSQLite {
		return db.bootstrapSQLiteSchema()
	}
	return migrations.Migrate(db.DB)
}

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)
