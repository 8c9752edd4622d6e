// Package export delivers the viewing-history text to the user as a file.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FileName is the name every export is saved under.
	FileName = "viewing-history.csv"
	// MimeType describes the saved content.
	MimeType = "text/csv"
)

// Saver writes exports into Dir.
type Saver struct {
	Dir string
}

// Save writes content to Dir/FileName, replacing any previous export. The file
// is written to a temporary name first and renamed into place so readers never
// see a partial file.
func (s Saver) Save(content string) (string, error) {
	dir := strings.TrimSpace(s.Dir)
	if dir == "" {
		return "", errors.New("export dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export: %w", err)
	}

	target := filepath.Join(dir, FileName)
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("rename export: %w", err)
	}
	return target, nil
}
