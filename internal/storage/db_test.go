package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesDataDir(t *testing.T) {
	root := t.TempDir()
	db, err := Open(root, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(root, ".uilens", "uilens.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestSaveAndListRuns(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{ID: "run-1", SourcePath: "a.json", SourceDigest: "d1", AnalyzedAt: base, ObjectCount: 10, ComponentCount: 2, OverallScore: 0.5, Grade: "F"},
		{ID: "run-2", SourcePath: "b.json", SourceDigest: "d2", AnalyzedAt: base.Add(time.Hour), ObjectCount: 20, ComponentCount: 4, OverallScore: 0.8, Grade: "B"},
	}
	for _, run := range runs {
		if err := db.SaveRun(run, []byte(`{"summary":{}}`)); err != nil {
			t.Fatalf("SaveRun(%s) error = %v", run.ID, err)
		}
	}

	listed, err := db.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListRuns() = %d runs, want 2", len(listed))
	}
	// Newest first.
	if listed[0].ID != "run-2" || listed[1].ID != "run-1" {
		t.Errorf("order = [%s %s], want [run-2 run-1]", listed[0].ID, listed[1].ID)
	}
	if listed[0].Grade != "B" || listed[0].ComponentCount != 4 {
		t.Errorf("run-2 = %+v", listed[0])
	}
	if !listed[0].AnalyzedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("AnalyzedAt = %v, want %v", listed[0].AnalyzedAt, base.Add(time.Hour))
	}
}

func TestListRunsLimit(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := Run{
			ID: "run-" + string(rune('a'+i)), SourcePath: "x.json", SourceDigest: "d",
			AnalyzedAt: base.Add(time.Duration(i) * time.Minute), Grade: "F",
		}
		if err := db.SaveRun(run, []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
	}

	listed, err := db.ListRuns(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 {
		t.Errorf("ListRuns(2) = %d runs, want 2", len(listed))
	}
	if listed[0].ID != "run-e" {
		t.Errorf("first run = %s, want run-e", listed[0].ID)
	}
}

func TestGetCatalog(t *testing.T) {
	db := openTestDB(t)

	catalogJSON := []byte(`{"summary":{"totalObjects":3}}`)
	run := Run{ID: "run-1", SourcePath: "a.json", SourceDigest: "d1", AnalyzedAt: time.Now(), Grade: "C"}
	if err := db.SaveRun(run, catalogJSON); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetCatalog("run-1")
	if err != nil {
		t.Fatalf("GetCatalog() error = %v", err)
	}
	if string(got) != string(catalogJSON) {
		t.Errorf("GetCatalog() = %s, want %s", got, catalogJSON)
	}

	if _, err := db.GetCatalog("no-such-run"); err == nil {
		t.Error("GetCatalog() should fail for an unknown run")
	}
}

func TestSaveRunRejectsDuplicateID(t *testing.T) {
	db := openTestDB(t)

	run := Run{ID: "run-1", SourcePath: "a.json", SourceDigest: "d1", AnalyzedAt: time.Now(), Grade: "A"}
	if err := db.SaveRun(run, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveRun(run, []byte(`{}`)); err == nil {
		t.Error("SaveRun() with a duplicate id should fail")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	root := t.TempDir()

	db1, err := Open(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	run := Run{ID: "run-1", SourcePath: "a.json", SourceDigest: "d1", AnalyzedAt: time.Now(), Grade: "A"}
	if err := db1.SaveRun(run, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	db1.Close()

	db2, err := Open(root, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db2.Close()

	listed, err := db2.ListRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 {
		t.Errorf("ListRuns() after reopen = %d runs, want 1", len(listed))
	}
}
