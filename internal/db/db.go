package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/yigit/salesweb/internal/config"
	"github.com/yigit/salesweb/internal/pkg/helpers"
	"github.com/yigit/salesweb/internal/pkg/logger"
)

// database/sql driver names
const (
	sqlDriverMySQL    = "mysql"
	sqlDriverPostgres = "pgx"
	sqlDriverSQLite   = "sqlite"
)

// DB is the data access handle shared by all repositories. It embeds
// *sqlx.DB so it can be passed wherever a sqlx.ExtContext is expected.
type DB struct {
	*sqlx.DB
	dialect string
}

// Open connects to the database described by cfg using its pool settings
func Open(cfg *config.Config) (*DB, error) {
	database, err := OpenDSN(cfg.Database.Driver, cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	if database.dialect != config.DriverSQLite {
		database.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		database.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	database.SetConnMaxLifetime(helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour))

	return database, nil
}

// OpenDSN connects with an explicit driver (mysql, postgres or sqlite) and DSN
func OpenDSN(driver, dsn string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sqlDriver string
	switch driver {
	case config.DriverMySQL:
		sqlDriver = sqlDriverMySQL
		normalized, err := normalizeMySQLDSN(dsn)
		if err != nil {
			return nil, err
		}
		dsn = normalized
	case config.DriverPostgres:
		sqlDriver = sqlDriverPostgres
	case config.DriverSQLite:
		sqlDriver = sqlDriverSQLite
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	conn, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	if driver == config.DriverSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &DB{DB: conn, dialect: driver}, nil
}

// normalizeMySQLDSN makes sure DATE columns are scanned as time values and
// that UPDATE reports matched rows, so an unchanged row is not mistaken for
// a missing one.
func normalizeMySQLDSN(dsn string) (string, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse mysql connection string: %w", err)
	}
	mcfg.ParseTime = true
	mcfg.ClientFoundRows = true
	return mcfg.FormatDSN(), nil
}

// Dialect returns the configured driver name (mysql, postgres or sqlite)
func (db *DB) Dialect() string {
	return db.dialect
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sqlx.Tx) error

// WithTransaction runs fn within a transaction, committing when it returns
// nil and rolling back otherwise.
func (db *DB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// InsertReturningID runs an INSERT written with ? placeholders and returns
// the generated id: RETURNING on PostgreSQL, LastInsertId elsewhere.
func InsertReturningID(ctx context.Context, q sqlx.ExtContext, query string, args ...interface{}) (int64, error) {
	if q.DriverName() == sqlDriverPostgres {
		var id int64
		if err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
