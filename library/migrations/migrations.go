package migrations

import "embed"

// MigrationFiles holds goose migrations, one directory per dialect.
//
//go:embed postgres/*.sql sqlite3/*.sql
var MigrationFiles embed.FS
