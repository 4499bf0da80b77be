package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "010_indexes.sql", "CREATE INDEX idx ON t (a);")
	writeMigration(t, dir, "001_core.sql", "CREATE TABLE t (a INT);")
	writeMigration(t, dir, "002_seed.sql", "INSERT INTO t VALUES (1);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migrations))
	}
	wantVersions := []int{1, 2, 10}
	for i, want := range wantVersions {
		if migrations[i].Version != want {
			t.Errorf("position %d: expected version %d, got %d", i, want, migrations[i].Version)
		}
	}
	if migrations[0].Name != "001_core.sql" {
		t.Errorf("unexpected first migration: %s", migrations[0].Name)
	}
	if migrations[0].SQL != "CREATE TABLE t (a INT);" {
		t.Errorf("file content not loaded: %q", migrations[0].SQL)
	}
}

func TestLoadMigrations_SkipsNonMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_core.sql", "CREATE TABLE t (a INT);")
	writeMigration(t, dir, "README.md", "notes")
	writeMigration(t, dir, "notes.sql", "not numbered")
	writeMigration(t, dir, "abc_nope.sql", "bad prefix")
	if err := os.Mkdir(filepath.Join(dir, "002_subdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("LoadMigrations: %v", err)
	}
	if len(migrations) != 1 {
		t.Fatalf("expected 1 migration, got %d", len(migrations))
	}
}

func TestLoadMigrations_MissingDirectory(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
