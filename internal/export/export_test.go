package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := Saver{Dir: dir}.Save("Title\n\"A\"")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Fatalf("path = %q, want %q", path, filepath.Join(dir, FileName))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "Title\n\"A\"" {
		t.Fatalf("content = %q", data)
	}
}

func TestSave_ReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := Saver{Dir: dir}

	if _, err := s.Save("first"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if _, err := s.Save("second"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		t.Fatalf("dir entries = %v, want only %s", entries, FileName)
	}
	data, _ := os.ReadFile(filepath.Join(dir, FileName))
	if string(data) != "second" {
		t.Fatalf("content = %q, want %q", data, "second")
	}
}

func TestSave_EmptyDir(t *testing.T) {
	if _, err := (Saver{}).Save("x"); err == nil {
		t.Fatal("Save with empty dir should fail")
	}
}

func TestConstants(t *testing.T) {
	if FileName != "viewing-history.csv" || MimeType != "text/csv" {
		t.Fatalf("FileName/MimeType = %q/%q", FileName, MimeType)
	}
}
