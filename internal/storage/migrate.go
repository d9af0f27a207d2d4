package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const versionTable = `CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TEXT NOT NULL
)`

type migration struct {
	version int
	file    string
}

// MigrateUp applies every embedded up migration newer than the recorded
// schema version, each in its own transaction.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(versionTable); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	pending, err := listMigrations(".up.sql")
	if err != nil {
		return err
	}
	for _, m := range pending {
		if applied[m.version] {
			continue
		}
		if err := runMigration(db, m, func(tx *sql.Tx) error {
			_, err := tx.Exec(`INSERT INTO schema_version(version, applied_at) VALUES(?, ?)`, m.version, time.Now().UTC().Format(time.RFC3339Nano))
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown reverts applied migrations newest first.
func MigrateDown(db *sql.DB) error {
	if _, err := db.Exec(versionTable); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	down, err := listMigrations(".down.sql")
	if err != nil {
		return err
	}
	for i := len(down) - 1; i >= 0; i-- {
		m := down[i]
		if !applied[m.version] {
			continue
		}
		if err := runMigration(db, m, func(tx *sql.Tx) error {
			_, err := tx.Exec(`DELETE FROM schema_version WHERE version = ?`, m.version)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

// SchemaVersion reports the highest applied migration, or 0.
func SchemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(v.Int64), nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query(`SELECT version FROM schema_version`)
	if err != nil {
		return nil, fmt.Errorf("read schema_version: %w", err)
	}
	defer rows.Close()
	out := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan schema_version: %w", err)
		}
		out[v] = true
	}
	return out, rows.Err()
}

func listMigrations(suffix string) ([]migration, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	out := make([]migration, 0, len(entries))
	for _, name := range entries {
		prefix, _, _ := strings.Cut(path.Base(name), "_")
		v, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: version prefix: %w", name, err)
		}
		out = append(out, migration{version: v, file: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func runMigration(db *sql.DB, m migration, record func(*sql.Tx) error) error {
	body, err := migrationFiles.ReadFile(m.file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.file, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.file, err)
	}
	if _, err := tx.Exec(string(body)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply migration %s: %w", m.file, err)
	}
	if err := record(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", m.file, err)
	}
	return tx.Commit()
}
