package sqlitemigrate

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("close db: %v", err)
		}
	})
	return db
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyMigrationsRunsEachFileOnce(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	migrations := fstest.MapFS{
		"0001_items.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"0002_notes.sql": &fstest.MapFile{Data: []byte("CREATE TABLE notes(id TEXT PRIMARY KEY);")},
		"README.md":      &fstest.MapFile{Data: []byte("ignored")},
	}

	for i := 0; i < 2; i++ {
		if err := ApplyMigrations(ctx, db, migrations, ""); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("recorded migrations = %d, want 2", got)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('items','notes')"); got != 2 {
		t.Fatalf("tables = %d, want 2", got)
	}
}

func TestApplyMigrationsLeavesFailedFileUnrecorded(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	bad := fstest.MapFS{"0001_bad.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")}}
	if err := ApplyMigrations(ctx, db, bad, ""); err == nil {
		t.Fatal("expected bad migration to fail")
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("recorded migrations = %d, want 0", got)
	}
}

func TestApplyMigrationsKeysByRoot(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	migrations := fstest.MapFS{"events/0001_events.sql": &fstest.MapFile{Data: []byte("CREATE TABLE events(id TEXT);")}}
	if err := ApplyMigrations(ctx, db, migrations, "events"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := count(t, db, "SELECT COUNT(*) FROM schema_migrations WHERE name = ?", "events/0001_events.sql"); got != 1 {
		t.Fatalf("keyed migrations = %d, want 1", got)
	}
}

func TestUpSection(t *testing.T) {
	got := UpSection("-- header\n-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;")
	if want := "\nCREATE TABLE a(id INT);\n"; got != want {
		t.Fatalf("up = %q, want %q", got, want)
	}
}
