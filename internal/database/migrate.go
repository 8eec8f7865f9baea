package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CharacterCreator_Go/migrations"
)

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

// Migrator applies the embedded goose migrations over a short-lived database/sql
// connection. The pgx pool is not used because goose speaks database/sql.
type Migrator struct {
	connString string
	fsys       fs.FS
	logger     goose.Logger
}

// NewMigrator creates a migrator over the embedded migration files
func NewMigrator(connString string) *Migrator {
	return &Migrator{connString: connString, fsys: migrations.FS, logger: goose.NopLogger()}
}

// WithLogger routes goose progress output (applied files, status table) to l
func (m *Migrator) WithLogger(l goose.Logger) *Migrator {
	m.logger = l
	return m
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", func(db *sql.DB) error {
		return goose.UpContext(ctx, db, ".")
	})
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", func(db *sql.DB) error {
		return goose.DownContext(ctx, db, ".")
	})
}

// Status logs the applied state of every migration
func (m *Migrator) Status(ctx context.Context) error {
	return m.run(ctx, "status", func(db *sql.DB) error {
		return goose.StatusContext(ctx, db, ".")
	})
}

// Version returns the current schema version
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64
	err := m.run(ctx, "version", func(db *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		version = v
		return err
	})
	return version, err
}

func (m *Migrator) run(ctx context.Context, command string, fn func(db *sql.DB) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	db, err := sql.Open(MigrationDriver, m.connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenMigrationDB, err)
	}
	defer db.Close()

	goose.SetBaseFS(m.fsys)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(m.logger)

	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	if err := fn(db); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	slog.Default().InfoContext(ctx, LogMsgMigrationCommandDone, "command", command)
	return nil
}
