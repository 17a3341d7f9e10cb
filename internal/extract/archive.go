// Package extract reads design exports from disk: either a bare JSON
// document or a ZIP archive containing one. It is the boundary to the
// extraction collaborator; the analysis core never touches files.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"golang.org/x/crypto/blake2b"

	"uilens/internal/document"
)

// SourceInfo records where a document came from, for run bookkeeping.
type SourceInfo struct {
	Path      string `json:"path"`
	Entry     string `json:"entry,omitempty"` // archive entry the document was read from
	SizeBytes int64  `json:"sizeBytes"`
	Digest    string `json:"digest"` // blake2b-256 of the source file
}

// documentEntryNames are the archive entries tried first, in order,
// before falling back to the first .json entry.
var documentEntryNames = []string{"document.json", "canvas.json", "export.json"}

// ReadExport loads a design export from path. ZIP archives (by extension
// or magic bytes) are searched for the document entry; anything else is
// parsed as JSON directly.
func ReadExport(path string) (*document.Document, *SourceInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read export: %w", err)
	}

	digest := blake2b.Sum256(data)
	info := &SourceInfo{
		Path:      path,
		SizeBytes: int64(len(data)),
		Digest:    fmt.Sprintf("%x", digest),
	}

	if isZip(path, data) {
		entry, payload, err := findDocumentEntry(data)
		if err != nil {
			return nil, nil, err
		}
		info.Entry = entry
		doc, err := document.ParseBytes(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("entry %s: %w", entry, err)
		}
		return doc, info, nil
	}

	doc, err := document.ParseBytes(data)
	if err != nil {
		return nil, nil, err
	}
	return doc, info, nil
}

func isZip(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return true
	}
	return len(data) >= 4 && bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

// findDocumentEntry locates the document JSON inside the archive: the
// well-known entry names first, then the first .json entry in archive
// order.
func findDocumentEntry(data []byte) (string, []byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open archive: %w", err)
	}

	for _, name := range documentEntryNames {
		for _, f := range reader.File {
			if filepath.Base(f.Name) == name {
				payload, err := readEntry(f)
				return f.Name, payload, err
			}
		}
	}

	for _, f := range reader.File {
		if strings.EqualFold(filepath.Ext(f.Name), ".json") {
			payload, err := readEntry(f)
			return f.Name, payload, err
		}
	}

	return "", nil, fmt.Errorf("archive contains no JSON document")
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", f.Name, err)
	}
	return buf.Bytes(), nil
}
