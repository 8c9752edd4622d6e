// Package selection tracks which documents are checked for bulk operations
// and which list rows are toggled open.
package selection

import (
	"maps"
	"slices"
)

// Set is a set of document ids. The zero value is empty and ready to use.
// Ids do not have to be visible to be toggled; a hidden id is added like any
// other.
type Set struct {
	ids map[int]struct{}
}

// Toggle adds id when absent and removes it when present.
func (s *Set) Toggle(id int) {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// ToggleAll clears the set when it already equals visible, otherwise replaces
// it with exactly the ids in visible.
func (s *Set) ToggleAll(visible []int) {
	if s.equals(visible) {
		s.Clear()
		return
	}
	next := make(map[int]struct{}, len(visible))
	for _, id := range visible {
		next[id] = struct{}{}
	}
	s.ids = next
}

// Clear empties the set.
func (s *Set) Clear() {
	s.ids = nil
}

// Contains reports whether id is selected.
func (s *Set) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in ascending order.
func (s *Set) IDs() []int {
	return slices.Sorted(maps.Keys(s.ids))
}

// Prune drops ids from the set. Absent ids are ignored.
func (s *Set) Prune(ids ...int) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Retain drops every id that is not in keep.
func (s *Set) Retain(keep []int) {
	if len(s.ids) == 0 {
		return
	}
	allowed := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		allowed[id] = struct{}{}
	}
	maps.DeleteFunc(s.ids, func(id int, _ struct{}) bool {
		_, ok := allowed[id]
		return !ok
	})
}

func (s *Set) equals(visible []int) bool {
	if len(s.ids) == 0 {
		return len(visible) == 0
	}
	distinct := make(map[int]struct{}, len(visible))
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			return false
		}
		distinct[id] = struct{}{}
	}
	return len(distinct) == len(s.ids)
}
