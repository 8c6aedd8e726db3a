package database

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		want    string
		dialect string
		wantErr bool
	}{
		{
			name:    "postgres by default",
			cfg:     Config{Host: "db", Port: 5432, Username: "program", Password: "p@ss", NameDB: "library", SSLMode: "disable"},
			want:    "postgres://program:p%40ss@db:5432/library?sslmode=disable",
			dialect: "postgres",
		},
		{
			name:    "sqlite",
			cfg:     Config{Driver: DriverSQLite, Path: "/tmp/library.db"},
			want:    "file:/tmp/library.db?_busy_timeout=5000&_foreign_keys=1",
			dialect: "sqlite3",
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "mysql"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.cfg.DSN()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, dsn)
			require.Equal(t, tt.dialect, tt.cfg.Dialect())
		})
	}
}

func TestNewDB_SQLiteMigrations(t *testing.T) {
	migrations := fstest.MapFS{
		"sqlite3/00001_shelves.sql": &fstest.MapFile{Data: []byte(`-- +goose Up
create table shelves (id integer primary key, name text not null);

-- +goose Down
drop table shelves;
`)},
	}
	cfg := &Config{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db")}

	db, err := NewDB(context.Background(), cfg, migrations)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`insert into shelves (name) values ('fantasy')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.Get(&n, `select count(*) from shelves`))
	require.Equal(t, 1, n)

	require.NoError(t, RunMigrations(db, cfg.Dialect(), migrations, "down"))
	_, err = db.Exec(`insert into shelves (name) values ('poetry')`)
	require.Error(t, err)
}
