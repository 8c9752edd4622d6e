// Package flags presents the documents that reviewers have flagged.
package flags

import (
	"slices"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/selection"
)

// Entry is one flagged document with its flags in submission order. An Entry
// always carries at least one flag.
type Entry struct {
	ID           int
	Title        string
	Description  string
	Year         string
	DocumentType string
	Flags        []catalog.Flag
}

// Source lists the documents still in the catalog.
type Source interface {
	List() []catalog.Document
}

// Model joins the catalog with the static flag table and tracks which entries
// are expanded.
type Model struct {
	docs     Source
	flags    map[int][]catalog.Flag
	expanded selection.Toggles[int]
}

// New copies flags so later edits by the caller have no effect.
func New(docs Source, flags map[int][]catalog.Flag) *Model {
	own := make(map[int][]catalog.Flag, len(flags))
	for id, list := range flags {
		if len(list) > 0 {
			own[id] = slices.Clone(list)
		}
	}
	return &Model{docs: docs, flags: own}
}

// List returns flagged documents that are still in the catalog, in catalog
// order.
func (m *Model) List() []Entry {
	var out []Entry
	for _, d := range m.docs.List() {
		list := m.flags[d.ID]
		if len(list) == 0 {
			continue
		}
		out = append(out, Entry{
			ID:           d.ID,
			Title:        d.Title,
			Description:  d.Description,
			Year:         d.Year,
			DocumentType: d.DocumentType,
			Flags:        slices.Clone(list),
		})
	}
	return out
}

// Count returns the number of flags across the listed entries.
func (m *Model) Count() int {
	total := 0
	for _, e := range m.List() {
		total += len(e.Flags)
	}
	return total
}

// ToggleExpanded flips whether id shows its flags and returns the new state.
func (m *Model) ToggleExpanded(id int) bool {
	return m.expanded.Toggle(id)
}

// Expanded reports whether id is expanded. Every entry starts collapsed.
func (m *Model) Expanded(id int) bool {
	return m.expanded.On(id)
}

// CollapseAll closes every entry.
func (m *Model) CollapseAll() {
	m.expanded.Reset()
}

// AnyExpanded reports whether at least one entry is open.
func (m *Model) AnyExpanded() bool {
	return m.expanded.Any()
}

// Forget drops the expansion state of removed documents.
func (m *Model) Forget(ids ...int) {
	for _, id := range ids {
		m.expanded.Set(id, false)
	}
}
