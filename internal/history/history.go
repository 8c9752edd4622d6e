// Package history records the documents and searches of a session.
package history

import (
	"errors"
	"fmt"
	"slices"

	"github.com/five82/marquee/internal/tabular"
)

// ErrBadExport is returned by ParseExport when the header does not match.
var ErrBadExport = errors.New("not a viewing history export")

// Header is the first line of every export.
var Header = []string{"Title", "Year", "Document Type", "Description", "Viewed Date"}

// Viewed is a document the user opened.
type Viewed struct {
	ID           int
	Title        string
	Description  string
	Year         string
	DocumentType string
	ViewedDate   string
}

// Search is a submitted listing query.
type Search struct {
	ID    int
	Query string
	Date  string
}

// Log holds both lists most-recent-first. Entries are never deduplicated.
// The zero value is an empty log.
type Log struct {
	viewed   []Viewed
	searches []Search
}

// NewLog starts from the given entries, which must already be
// most-recent-first.
func NewLog(viewed []Viewed, searches []Search) *Log {
	return &Log{viewed: slices.Clone(viewed), searches: slices.Clone(searches)}
}

// Record puts entry at the front of the viewed list.
func (l *Log) Record(entry Viewed) {
	l.viewed = slices.Insert(l.viewed, 0, entry)
}

// RecordSearch puts entry at the front of the search list.
func (l *Log) RecordSearch(entry Search) {
	l.searches = slices.Insert(l.searches, 0, entry)
}

// Viewed returns a copy of the viewed list.
func (l *Log) Viewed() []Viewed {
	return slices.Clone(l.viewed)
}

// Searches returns a copy of the search list.
func (l *Log) Searches() []Search {
	return slices.Clone(l.searches)
}

// NextSearchID returns an id one above the largest search id recorded.
func (l *Log) NextSearchID() int {
	next := 1
	for _, s := range l.searches {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return next
}

// Clear empties both lists together.
func (l *Log) Clear() {
	l.viewed = nil
	l.searches = nil
}

// Export renders the viewed list as comma-separated text, most-recent-first.
func (l *Log) Export() string {
	rows := make([][]string, len(l.viewed))
	for i, v := range l.viewed {
		rows[i] = []string{v.Title, v.Year, v.DocumentType, v.Description, v.ViewedDate}
	}
	return tabular.Encode(Header, rows)
}

// ParseExport reads text written by Export. The ids are not part of the
// export and come back as zero.
func ParseExport(text string) ([]Viewed, error) {
	header, rows, err := tabular.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	if !slices.Equal(header, Header) {
		return nil, fmt.Errorf("header %q: %w", header, ErrBadExport)
	}
	out := make([]Viewed, 0, len(rows))
	for _, row := range rows {
		out = append(out, Viewed{
			Title:        row[0],
			Year:         row[1],
			DocumentType: row[2],
			Description:  row[3],
			ViewedDate:   row[4],
		})
	}
	return out, nil
}
