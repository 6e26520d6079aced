// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"enroll/internal/errors"

	"github.com/pressly/goose/v3"
)

const dialect = "postgres"

// FS holds the goose-annotated SQL files.
//
//go:embed *.sql
var FS embed.FS

// goose keeps its base FS, dialect and logger in package state.
var gooseMu sync.Mutex

// Migrator runs the embedded migrations against a database handle.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator creates a Migrator. A nil logger falls back to slog.Default.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Migrator{db: db, logger: logger}
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(func() error {
		return goose.UpContext(ctx, m.db, ".")
	}, "apply migrations")
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(func() error {
		return goose.DownContext(ctx, m.db, ".")
	}, "roll back migration")
}

// Status logs the applied state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	return m.run(func() error {
		return goose.StatusContext(ctx, m.db, ".")
	}, "read migration status")
}

// Version returns the current schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64

	err := m.run(func() error {
		v, err := goose.GetDBVersionContext(ctx, m.db)
		version = v

		return err
	}, "read schema version")

	return version, err
}

func (m *Migrator) run(fn func() error, action string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(FS)
	goose.SetLogger(&gooseLogger{logger: m.logger})

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := fn(); err != nil {
		return errors.Wrapf(err, "failed to %s", action)
	}

	return nil
}

// gooseLogger adapts slog to goose.Logger.
type gooseLogger struct {
	logger *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "migrations"))
	os.Exit(1)
}
