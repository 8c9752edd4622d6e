package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog wraps every validation failure reported by LoadFile.
var ErrInvalidCatalog = errors.New("invalid catalog")

type catalogFile struct {
	Documents []Document     `yaml:"documents"`
	Flags     map[int][]Flag `yaml:"flags"`
}

// LoadFile reads a YAML catalog that replaces the built-in seed.
//
//	documents:
//	  - id: 1
//	    title: Sunset Boulevard
//	    year: "1950"
//	flags:
//	  1:
//	    - {id: 1, user: Reviewer, reason: Missing page, date: "Nov 1, 2025"}
func LoadFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (Seed, error) {
	var raw catalogFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Seed{}, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if err := validate(raw); err != nil {
		return Seed{}, err
	}
	return Seed{
		Documents: cloneDocuments(raw.Documents),
		Flags:     cloneFlags(raw.Flags),
	}, nil
}

func validate(raw catalogFile) error {
	if len(raw.Documents) == 0 {
		return fmt.Errorf("%w: no documents", ErrInvalidCatalog)
	}
	seen := make(map[int]struct{}, len(raw.Documents))
	for i, d := range raw.Documents {
		if d.ID <= 0 {
			return fmt.Errorf("%w: document %d: id must be positive", ErrInvalidCatalog, i)
		}
		if _, dup := seen[d.ID]; dup {
			return fmt.Errorf("%w: duplicate document id %d", ErrInvalidCatalog, d.ID)
		}
		seen[d.ID] = struct{}{}
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("%w: document %d: title is empty", ErrInvalidCatalog, d.ID)
		}
		if _, ok := parseYear(d.Year); !ok {
			return fmt.Errorf("%w: document %d: year %q is not four digits", ErrInvalidCatalog, d.ID, d.Year)
		}
	}
	for id := range raw.Flags {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: flags reference unknown document %d", ErrInvalidCatalog, id)
		}
	}
	return nil
}
