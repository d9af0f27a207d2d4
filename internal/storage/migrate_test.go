package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Set(context.Background(), "roundtrip", `["ok"]`); err != nil {
		t.Fatalf("set after roundtrip failed: %v", err)
	}
	got, err := store.Get(context.Background(), "roundtrip")
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got != `["ok"]` {
		t.Fatalf("unexpected value after roundtrip: %q", got)
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "twice.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := MigrateUp(db); err != nil {
			t.Fatalf("migrate up #%d failed: %v", i+1, err)
		}
	}
}

func TestSchemaVersionTracksMigrations(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "version.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up failed: %v", err)
	}
	if v, err := SchemaVersion(db); err != nil || v != 1 {
		t.Fatalf("schema version after up = %d, %v; want 1", v, err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if v, err := SchemaVersion(db); err != nil || v != 0 {
		t.Fatalf("schema version after down = %d, %v; want 0", v, err)
	}
	if _, err := db.Exec(`SELECT key FROM kv`); err == nil {
		t.Fatal("expected kv table to be dropped")
	}
}
