package catalog

import (
	"errors"
	"slices"
	"sort"
	"strings"
)

// ErrNotFound is returned when a document id is not in the active set.
var ErrNotFound = errors.New("document not found")

// Query narrows the catalog listing. Zero fields do not filter.
type Query struct {
	Text     string // substring over title, year or studio
	Genre    string // substring over genre
	YearFrom int    // inclusive
	YearTo   int    // inclusive
}

// IsZero reports whether the query filters nothing.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Text) == "" && strings.TrimSpace(q.Genre) == "" && q.YearFrom == 0 && q.YearTo == 0
}

// Store holds the active documents of one session in seed order.
// Store is not safe for concurrent use.
type Store struct {
	docs []Document
}

// NewStore copies docs into a new store. Later changes to docs do not affect
// the store.
func NewStore(docs []Document) *Store {
	return &Store{docs: cloneDocuments(docs)}
}

// List returns every active document in insertion order.
func (s *Store) List() []Document {
	return cloneDocuments(s.docs)
}

// Len returns the number of active documents.
func (s *Store) Len() int {
	return len(s.docs)
}

// Find returns the document with the given id.
func (s *Store) Find(id int) (Document, error) {
	idx := s.index(id)
	if idx < 0 {
		return Document{}, ErrNotFound
	}
	return s.docs[idx].clone(), nil
}

// Contains reports whether id is in the active set.
func (s *Store) Contains(id int) bool {
	return s.index(id) >= 0
}

// Filter returns the documents whose title, year or studio contains query,
// case-insensitively, preserving order. A blank query returns every document.
func (s *Store) Filter(query string) []Document {
	return s.Search(Query{Text: query})
}

// Search applies every non-zero field of q.
func (s *Store) Search(q Query) []Document {
	if q.IsZero() {
		return s.List()
	}
	var out []Document
	for _, d := range s.docs {
		if q.matches(d) {
			out = append(out, d.clone())
		}
	}
	return out
}

// Managed returns the manager projection of Filter(query).
func (s *Store) Managed(query string) []Managed {
	docs := s.Filter(query)
	out := make([]Managed, len(docs))
	for i, d := range docs {
		out[i] = d.Manage()
	}
	return out
}

// Remove drops every document whose id is in ids. Unknown ids are ignored.
// It returns the ids that were actually removed, in store order.
func (s *Store) Remove(ids ...int) []int {
	if len(ids) == 0 || len(s.docs) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	var removed []int
	s.docs = slices.DeleteFunc(s.docs, func(d Document) bool {
		if _, ok := drop[d.ID]; ok {
			removed = append(removed, d.ID)
			return true
		}
		return false
	})
	return removed
}

// Genres returns the distinct genre tokens across the active documents,
// sorted. Compound genres such as "Film Noir / Drama" contribute each part.
func (s *Store) Genres() []string {
	seen := map[string]struct{}{}
	for _, d := range s.docs {
		for _, part := range strings.Split(d.Genre, "/") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			seen[part] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for g := range seen {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func (s *Store) index(id int) int {
	return slices.IndexFunc(s.docs, func(d Document) bool { return d.ID == id })
}

func (q Query) matches(d Document) bool {
	if text := strings.ToLower(strings.TrimSpace(q.Text)); text != "" {
		if !strings.Contains(strings.ToLower(d.Title), text) &&
			!strings.Contains(strings.ToLower(d.Year), text) &&
			!strings.Contains(strings.ToLower(d.Studio), text) {
			return false
		}
	}
	if genre := strings.ToLower(strings.TrimSpace(q.Genre)); genre != "" {
		if !strings.Contains(strings.ToLower(d.Genre), genre) {
			return false
		}
	}
	if q.YearFrom != 0 || q.YearTo != 0 {
		year, ok := parseYear(d.Year)
		if !ok {
			return false
		}
		if q.YearFrom != 0 && year < q.YearFrom {
			return false
		}
		if q.YearTo != 0 && year > q.YearTo {
			return false
		}
	}
	return true
}

func parseYear(value string) (int, bool) {
	if len(value) != 4 {
		return 0, false
	}
	year := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}
