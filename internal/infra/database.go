package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseOptions selects the store backend.
type DatabaseOptions struct {
	Driver        string // sqlite | postgres
	DSN           string // file path for sqlite, URL for postgres
	BusyTimeoutMS int
}

// NewDatabase opens the store and applies the schema. SQLite connections are
// opened in WAL mode with a busy timeout so readers are never blocked by the
// single writer; a writer that cannot get the lock in time fails with a
// "database is locked" error that repositories report as apierror.ErrBusy.
func NewDatabase(opts DatabaseOptions) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(opts.DSN)
	case DriverSQLite, "":
		dialector = sqlite.Open(sqliteDSN(opts.DSN, opts.BusyTimeoutMS))
	default:
		return nil, fmt.Errorf("database: driver %q no soportado", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.Driver == DriverPostgres {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	} else {
		sqlDB.SetMaxOpenConns(8)
		sqlDB.SetMaxIdleConns(2)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	log.Info().Str("driver", db.Dialector.Name()).Msg("database ready")
	return db, nil
}

// sqliteDSN appends the per-connection pragmas to a SQLite file path.
func sqliteDSN(path string, busyTimeoutMS int) string {
	if busyTimeoutMS <= 0 {
		busyTimeoutMS = 30000
	}
	pragmas := fmt.Sprintf("_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", busyTimeoutMS)
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}
