package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/champlain/campus/internal/pkg/logger"
)

const migrationsTable = "schema_migrations"

// Migrator manages database migrations
type Migrator struct {
	db runner
	sb squirrel.StatementBuilderType
}

// NewMigrator creates a migrator for a PostgreSQL pool
func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return newMigrator(pgxRunner{pool: pool})
}

// NewSQLiteMigrator creates a migrator for a database/sql handle
func NewSQLiteMigrator(db *sql.DB) *Migrator {
	return newMigrator(sqlRunner{db: db})
}

func newMigrator(r runner) *Migrator {
	return &Migrator{
		db: r,
		sb: squirrel.StatementBuilder.PlaceholderFormat(r.placeholder()),
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if err := m.db.exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// IsApplied checks if a specific migration version has already been applied
func (m *Migrator) IsApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := m.sb.Select("COUNT(*)").
		From(migrationsTable).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration status query: %w", err)
	}

	n, err := m.db.count(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return n > 0, nil
}

// versionOf extracts the version prefix from a script name ("001_init.sql" => "001")
func versionOf(name string) string {
	return strings.Split(path.Base(name), "_")[0]
}

// apply runs one script inside a transaction and records its version.
// It reports false when the version was already applied.
func (m *Migrator) apply(ctx context.Context, name string, script []byte) (bool, error) {
	version := versionOf(name)

	applied, err := m.IsApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if applied {
		logger.Debug().Str("migration", name).Msg("Migration already applied, skipping")
		return false, nil
	}

	insert, args, err := m.sb.Insert(migrationsTable).Columns("version").Values(version).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build migration record query: %w", err)
	}

	t, err := m.db.begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = t.rollback(ctx) }()

	if err := t.exec(ctx, string(script)); err != nil {
		return false, fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
	}
	if err := t.exec(ctx, insert, args...); err != nil {
		return false, fmt.Errorf("failed to record migration: %w", err)
	}
	if err := t.commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Info().Str("migration", name).Msg("Migration applied")
	return true, nil
}

// MigrateFromFS applies every .sql file in dir of fsys, in name order.
// Returns the number of scripts applied.
func (m *Migrator) MigrateFromFS(ctx context.Context, fsys fs.FS, dir string) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	applied := 0
	for _, name := range sqlFiles {
		full := path.Join(dir, name)
		script, err := fs.ReadFile(fsys, full)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration file: %w", err)
		}

		ok, err := m.apply(ctx, full, script)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
		}
	}

	return applied, nil
}

// Up applies the embedded migrations for the given dialect directory.
func (m *Migrator) Up(ctx context.Context, dialect string) (int, error) {
	if dialect != PostgresDir && dialect != SQLiteDir {
		return 0, errors.New("unknown migration dialect: " + dialect)
	}
	return m.MigrateFromFS(ctx, FS, dialect)
}
