package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

const sampleExport = `{"files": [{"id": "f1", "pages": [{"id": "p1", "objects": [
	{"id": "o1", "type": "rectangle", "name": "btn-1", "width": 120, "height": 40}
]}]}]}`

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReadExportBareJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}

	doc, info, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport() error = %v", err)
	}
	if doc.ObjectCount() != 1 {
		t.Errorf("ObjectCount() = %d, want 1", doc.ObjectCount())
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
	if info.Entry != "" {
		t.Errorf("Entry = %q, want empty for bare JSON", info.Entry)
	}
	if info.SizeBytes != int64(len(sampleExport)) {
		t.Errorf("SizeBytes = %d, want %d", info.SizeBytes, len(sampleExport))
	}
	if len(info.Digest) != 64 {
		t.Errorf("Digest = %q, want 64 hex chars", info.Digest)
	}
}

func TestReadExportZipWellKnownEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.zip")
	writeZip(t, path, map[string]string{
		"assets/readme.txt":   "not a document",
		"export/document.json": sampleExport,
	})

	doc, info, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport() error = %v", err)
	}
	if doc.ObjectCount() != 1 {
		t.Errorf("ObjectCount() = %d, want 1", doc.ObjectCount())
	}
	if info.Entry != "export/document.json" {
		t.Errorf("Entry = %q, want export/document.json", info.Entry)
	}
}

func TestReadExportZipFallsBackToFirstJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.zip")
	writeZip(t, path, map[string]string{
		"data.json": sampleExport,
	})

	doc, info, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport() error = %v", err)
	}
	if doc.ObjectCount() != 1 {
		t.Errorf("ObjectCount() = %d, want 1", doc.ObjectCount())
	}
	if info.Entry != "data.json" {
		t.Errorf("Entry = %q, want data.json", info.Entry)
	}
}

func TestReadExportZipByMagicBytes(t *testing.T) {
	// Archive with a non-.zip extension is still detected by its header.
	path := filepath.Join(t.TempDir(), "design.export")
	writeZip(t, path, map[string]string{"document.json": sampleExport})

	doc, _, err := ReadExport(path)
	if err != nil {
		t.Fatalf("ReadExport() error = %v", err)
	}
	if doc.ObjectCount() != 1 {
		t.Errorf("ObjectCount() = %d, want 1", doc.ObjectCount())
	}
}

func TestReadExportErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := ReadExport(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadExport() should fail for a missing file")
	}

	noDoc := filepath.Join(dir, "empty.zip")
	writeZip(t, noDoc, map[string]string{"readme.txt": "nothing here"})
	if _, _, err := ReadExport(noDoc); err == nil {
		t.Error("ReadExport() should fail for an archive without JSON")
	}

	badJSON := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("[1,2,3]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := ReadExport(badJSON); err == nil {
		t.Error("ReadExport() should fail for a non-object JSON root")
	}
}

func TestReadExportDigestIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}

	_, first, err := ReadExport(path)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := ReadExport(path)
	if err != nil {
		t.Fatal(err)
	}
	if first.Digest != second.Digest {
		t.Errorf("digest changed between reads: %s vs %s", first.Digest, second.Digest)
	}
}
