package migration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations_SortsAndSkipsNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V2__add_index.sql", "CREATE INDEX x ON t (a);")
	writeFile(t, dir, "V10__later.sql", "SELECT 10;")
	writeFile(t, dir, "V1__init.sql", "CREATE TABLE t (a INT);")
	writeFile(t, dir, "notes.txt", "ignore me")
	writeFile(t, dir, "V3_missing_separator.sql", "ignore me too")

	migs, err := loadMigrations(dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(migs))
	}
	if migs[0].Version != 1 || migs[1].Version != 2 || migs[2].Version != 10 {
		t.Fatalf("expected numeric version order, got %v", []int64{migs[0].Version, migs[1].Version, migs[2].Version})
	}
	if migs[0].Name != "init" {
		t.Fatalf("unexpected name: %q", migs[0].Name)
	}
	if migs[0].Checksum == "" || migs[0].Checksum == migs[1].Checksum {
		t.Fatalf("expected distinct checksums")
	}
}

func TestLoadMigrations_DuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "V1__a.sql", "SELECT 1;")
	writeFile(t, dir, "V1__b.sql", "SELECT 2;")

	if _, err := loadMigrations(dir); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}

func TestLoadMigrations_MissingDirIsEmpty(t *testing.T) {
	migs, err := loadMigrations(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(migs) != 0 {
		t.Fatalf("expected no migrations, got %d", len(migs))
	}
}
