package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"showcase/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// ErrDirty is returned when a previous migration failed half way and needs manual repair.
var ErrDirty = errors.New("database is in a dirty migration state")

const (
	createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)`
	selectVersion      = `SELECT version, dirty FROM schema_migrations FETCH FIRST 1 ROWS ONLY`
	deleteVersion      = `DELETE FROM schema_migrations`
	insertVersion      = `INSERT INTO schema_migrations (version, dirty) VALUES (:1, :2)`
)

// Migrator applies the embedded migrations. Oracle runs one statement per call, so each
// migration file is split on statement terminators before it is executed.
type Migrator struct {
	db     *sqlx.DB
	source source.Driver
}

// NewMigrator creates a Migrator over the migrations embedded in the binary
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	return newMigrator(db, migrationFiles, "migrations")
}

func newMigrator(db *sqlx.DB, fsys fs.FS, dir string) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open migration source: %w", err)
	}
	return &Migrator{db: db, source: src}, nil
}

// Close releases the migration source
func (m *Migrator) Close() error {
	return m.source.Close()
}

type versionRow struct {
	Version int64 `db:"VERSION"`
	Dirty   int   `db:"DIRTY"`
}

// Version returns the current schema version (0 when nothing has been applied) and
// whether it is dirty.
func (m *Migrator) Version(ctx context.Context) (uint, bool, error) {
	if _, err := m.db.ExecContext(ctx, createVersionTable); err != nil {
		return 0, false, fmt.Errorf("could not create schema_migrations: %w", err)
	}
	var row versionRow
	if err := m.db.GetContext(ctx, &row, selectVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("could not read schema version: %w", err)
	}
	return uint(row.Version), row.Dirty == 1, nil
}

// Up applies every pending migration and returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, dirty, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("%w at version %d", ErrDirty, current)
	}

	applied := 0
	next, err := m.source.First()
	for err == nil {
		if next > current {
			if err := m.apply(ctx, next, next, true); err != nil {
				return applied, err
			}
			applied++
		}
		next, err = m.source.Next(next)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return applied, fmt.Errorf("could not list migrations: %w", err)
	}
	return applied, nil
}

// Down rolls back steps migrations, or all of them when steps <= 0. It returns how many
// were rolled back.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	current, dirty, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("%w at version %d", ErrDirty, current)
	}

	rolledBack := 0
	for current > 0 && (steps <= 0 || rolledBack < steps) {
		prev, err := m.source.Prev(current)
		switch {
		case errors.Is(err, os.ErrNotExist):
			prev = 0
		case err != nil:
			return rolledBack, fmt.Errorf("could not find migration before %d: %w", current, err)
		}
		if err := m.apply(ctx, current, prev, false); err != nil {
			return rolledBack, err
		}
		rolledBack++
		current = prev
	}
	return rolledBack, nil
}

// apply runs the up or down script of version and records target as the new version.
func (m *Migrator) apply(ctx context.Context, version, target uint, up bool) error {
	var (
		body       io.ReadCloser
		identifier string
		err        error
	)
	if up {
		body, identifier, err = m.source.ReadUp(version)
	} else {
		body, identifier, err = m.source.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	if err := m.setVersion(ctx, version, true); err != nil {
		return err
	}
	for _, stmt := range SplitStatements(string(content)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}
	if err := m.setVersion(ctx, target, false); err != nil {
		return err
	}

	logger.Get().Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.Bool("up", up),
	)
	return nil
}

func (m *Migrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	if _, err := m.db.ExecContext(ctx, deleteVersion); err != nil {
		return fmt.Errorf("could not clear schema version: %w", err)
	}
	if version == 0 && !dirty {
		return nil
	}
	dirtyFlag := 0
	if dirty {
		dirtyFlag = 1
	}
	if _, err := m.db.ExecContext(ctx, insertVersion, int64(version), dirtyFlag); err != nil {
		return fmt.Errorf("could not record schema version %d: %w", version, err)
	}
	return nil
}

// SplitStatements splits a migration script on ';' line endings and drops comment-only
// and blank statements.
func SplitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)
	flush := func() {
		stmt := strings.TrimSpace(current.String())
		current.Reset()
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			flush()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	flush()
	return statements
}
