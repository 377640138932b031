package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"

	"github.com/yigit/salesweb/internal/config"
)

//go:embed migrations/*/*.sql
var embedMigrations embed.FS

// gooseDialects maps the configured driver to the goose dialect and the
// embedded migration directory
var gooseDialects = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	config.DriverMySQL:    {dialect: goose.DialectMySQL, dir: "migrations/mysql"},
	config.DriverPostgres: {dialect: goose.DialectPostgres, dir: "migrations/postgres"},
	config.DriverSQLite:   {dialect: goose.DialectSQLite3, dir: "migrations/sqlite"},
}

// Migrate applies all pending schema migrations for the database dialect
func (db *DB) Migrate(ctx context.Context, lgr zerolog.Logger) error {
	target, ok := gooseDialects[db.dialect]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", db.dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{lgr: lgr})

	if err := goose.SetDialect(string(target.dialect)); err != nil {
		return fmt.Errorf("setting dialect for migrations: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB.DB, target.dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct {
	lgr zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.lgr.Info().Str("component", "migrations").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.lgr.Fatal().Str("component", "migrations").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
