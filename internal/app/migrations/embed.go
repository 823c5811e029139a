package migrations

import "embed"

// FS holds the SQL migrations, one directory per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dialect directories inside FS.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
