package state

import (
	"slices"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/flags"
	"github.com/five82/marquee/internal/history"
	"github.com/five82/marquee/internal/nav"
	"github.com/five82/marquee/internal/uploads"
)

// Snapshot is everything the UI needs to draw one frame. All slices and maps
// are copies owned by the caller.
type Snapshot struct {
	SessionID string
	Nav       nav.State

	HomeQuery catalog.Query
	Listing   []catalog.Document
	Genres    []string
	Total     int

	// Detail is the open document, resolved when HasDetail is true.
	Detail    catalog.Document
	HasDetail bool

	Viewed   []history.Viewed
	Searches []history.Search

	Flagged   []flags.Entry
	Expanded  map[int]bool
	FlagCount int

	ManagerQuery       string
	Managed            []catalog.Managed
	Selected           []int
	AllVisibleSelected bool

	UploadMode  uploads.Mode
	UploadFiles map[uploads.Slot]uploads.FileRef
}

// IsSelected reports whether id is checked in the manager.
func (s Snapshot) IsSelected(id int) bool {
	return slices.Contains(s.Selected, id)
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:    s.id,
		Nav:          s.nav.State(),
		HomeQuery:    s.homeQuery,
		Listing:      s.docs.Search(s.homeQuery),
		Genres:       s.docs.Genres(),
		Total:        s.docs.Len(),
		Viewed:       s.history.Viewed(),
		Searches:     s.history.Searches(),
		Flagged:      s.flags.List(),
		Expanded:     map[int]bool{},
		ManagerQuery: s.managerQuery,
		Managed:      s.docs.Managed(s.managerQuery),
		Selected:     s.selected.IDs(),
		UploadMode:   s.uploads.Mode(),
		UploadFiles:  map[uploads.Slot]uploads.FileRef{},
	}

	if id, ok := s.nav.Detail(); ok {
		if doc, err := s.docs.Find(id); err == nil {
			snap.Detail = doc
			snap.HasDetail = true
		}
	}

	for _, e := range snap.Flagged {
		snap.FlagCount += len(e.Flags)
		if s.flags.Expanded(e.ID) {
			snap.Expanded[e.ID] = true
		}
	}

	visible := catalogIDs(snap.Managed)
	snap.AllVisibleSelected = len(visible) > 0 && len(visible) == len(snap.Selected) &&
		!slices.ContainsFunc(visible, func(id int) bool { return !s.selected.Contains(id) })

	for _, slot := range uploads.Slots {
		if ref, ok := s.uploads.Selected(slot); ok {
			snap.UploadFiles[slot] = ref
		}
	}
	return snap
}
