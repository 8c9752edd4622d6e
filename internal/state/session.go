package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/flags"
	"github.com/five82/marquee/internal/history"
	"github.com/five82/marquee/internal/logger"
	"github.com/five82/marquee/internal/nav"
	"github.com/five82/marquee/internal/selection"
	"github.com/five82/marquee/internal/uploads"
)

// DateLayout formats the dates stored in history entries.
const DateLayout = "Jan 2, 2006"

// ErrNoSaver is returned by ExportHistory when the session has nowhere to
// write.
var ErrNoSaver = errors.New("no export destination configured")

// Saver persists exported history text and returns where it went.
type Saver interface {
	Save(content string) (string, error)
}

// Options configures New. Every field is optional.
type Options struct {
	// Seed replaces the built-in catalog when it has documents.
	Seed catalog.Seed
	// History replaces the seeded history log.
	History   *history.Log
	Log       logger.Logger
	Clock     func() time.Time
	Saver     Saver
	Transport uploads.Transport
}

// Session is one independent browsing session. It owns its own copy of the
// catalog, history, selection and navigation state and keeps them consistent
// across intents. A Session is not safe for concurrent use; the UI drives it
// from a single update loop.
type Session struct {
	id  string
	log logger.Logger
	now func() time.Time

	docs     *catalog.Store
	flags    *flags.Model
	history  *history.Log
	nav      *nav.Controller
	selected selection.Set
	uploads  uploads.Form

	homeQuery    catalog.Query
	managerQuery string

	saver     Saver
	transport uploads.Transport
}

// New builds a session from opts.
func New(opts Options) *Session {
	seed := opts.Seed
	if len(seed.Documents) == 0 {
		seed = catalog.DefaultSeed()
	}
	hist := opts.History
	if hist == nil {
		hist = history.NewLog(history.SeedViewed(), history.SeedSearches())
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	id := uuid.New().String()
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.String("session", id))
	transport := opts.Transport
	if transport == nil {
		transport = uploads.LogTransport{Log: log}
	}

	docs := catalog.NewStore(seed.Documents)
	s := &Session{
		id:        id,
		log:       log,
		now:       now,
		docs:      docs,
		flags:     flags.New(docs, seed.Flags),
		history:   hist,
		nav:       nav.New(docs),
		saver:     opts.Saver,
		transport: transport,
	}
	s.uploads.Now = now
	log.Info("session started", logger.Int("documents", docs.Len()))
	return s
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// SetHomeQuery narrows the Home listing. It does not record a search.
func (s *Session) SetHomeQuery(q catalog.Query) {
	s.homeQuery = q
	s.log.Debug("home query", logger.String("text", q.Text), logger.String("genre", q.Genre),
		logger.Int("year_from", q.YearFrom), logger.Int("year_to", q.YearTo))
}

// SubmitSearch applies text to the Home listing and records it in the search
// history. Blank text only clears the filter.
func (s *Session) SubmitSearch(text string) {
	s.homeQuery.Text = text
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.history.RecordSearch(history.Search{
		ID:    s.history.NextSearchID(),
		Query: text,
		Date:  s.today(),
	})
	s.log.Debug("search submitted", logger.String("query", text))
}

// OpenDocument shows the detail view of id and records it in the viewing
// history. On error nothing changes.
func (s *Session) OpenDocument(id int) error {
	if err := s.nav.OpenDocument(id); err != nil {
		s.log.Debug("open document ignored", logger.Int("id", id), logger.Error(err))
		return err
	}
	s.recordView(id)
	return nil
}

// OpenFromFlagged opens id from the Flagged page and switches to Home.
func (s *Session) OpenFromFlagged(id int) error {
	if err := s.nav.OpenFromFlagged(id); err != nil {
		s.log.Debug("open flagged ignored", logger.Int("id", id), logger.Error(err))
		return err
	}
	s.recordView(id)
	return nil
}

// Back leaves the detail view. It reports whether anything changed.
func (s *Session) Back() bool {
	return s.nav.Back()
}

// NavigateTo switches pages.
func (s *Session) NavigateTo(page nav.Page) {
	s.nav.NavigateTo(page)
	s.log.Debug("navigate", logger.String("page", page.String()))
}

// ToggleFlagExpanded opens or closes the flags of a flagged document.
func (s *Session) ToggleFlagExpanded(id int) bool {
	open := s.flags.ToggleExpanded(id)
	s.log.Debug("flags toggled", logger.Int("id", id), logger.Bool("expanded", open))
	return open
}

// CollapseFlags closes every flagged entry and reports whether any was open.
func (s *Session) CollapseFlags() bool {
	if !s.flags.AnyExpanded() {
		return false
	}
	s.flags.CollapseAll()
	s.log.Debug("flags collapsed")
	return true
}

// SetManagerQuery filters the manager table. Selected documents that are no
// longer visible are deselected.
func (s *Session) SetManagerQuery(query string) {
	s.managerQuery = query
	s.selected.Retain(catalogIDs(s.docs.Managed(query)))
	s.log.Debug("manager query", logger.String("query", query), logger.Int("selected", s.selected.Len()))
}

// ToggleSelected flips the manager checkbox of id. Hidden documents may be
// toggled; ids that are not in the catalog return catalog.ErrNotFound.
func (s *Session) ToggleSelected(id int) error {
	if !s.docs.Contains(id) {
		return fmt.Errorf("select %d: %w", id, catalog.ErrNotFound)
	}
	s.selected.Toggle(id)
	return nil
}

// ToggleAllVisible selects every visible manager row, or clears the selection
// when it already equals them.
func (s *Session) ToggleAllVisible() {
	s.selected.ToggleAll(catalogIDs(s.docs.Managed(s.managerQuery)))
}

// ClearSelection deselects everything.
func (s *Session) ClearSelection() {
	s.selected.Clear()
}

// Remove deletes ids from the catalog and drops every reference to them. It
// returns the ids that were actually removed.
func (s *Session) Remove(ids ...int) []int {
	removed := s.docs.Remove(ids...)
	if len(removed) == 0 {
		return nil
	}
	s.selected.Prune(removed...)
	s.nav.Forget(removed...)
	s.flags.Forget(removed...)
	s.log.Info("documents removed", logger.Ints("ids", removed), logger.Int("remaining", s.docs.Len()))
	return removed
}

// RemoveSelected deletes every selected document and clears the selection.
func (s *Session) RemoveSelected() []int {
	removed := s.Remove(s.selected.IDs()...)
	s.selected.Clear()
	return removed
}

// ClearHistory empties both the viewing and the search history.
func (s *Session) ClearHistory() {
	s.history.Clear()
	s.log.Info("history cleared")
}

// ExportText returns the viewing history as comma-separated text.
func (s *Session) ExportText() string {
	return s.history.Export()
}

// ExportHistory saves the viewing history and returns the written path.
func (s *Session) ExportHistory() (string, error) {
	if s.saver == nil {
		return "", ErrNoSaver
	}
	path, err := s.saver.Save(s.history.Export())
	if err != nil {
		s.log.Warn("export failed", logger.Error(err))
		return "", fmt.Errorf("export history: %w", err)
	}
	s.log.Info("history exported", logger.String("path", path))
	return path, nil
}

// SelectUpload puts path into an upload slot.
func (s *Session) SelectUpload(slot uploads.Slot, path string) error {
	if err := s.uploads.Select(slot, path); err != nil {
		return err
	}
	s.log.Debug("upload selected", logger.String("slot", slot.String()), logger.String("path", path))
	return nil
}

// ClearUpload empties one upload slot.
func (s *Session) ClearUpload(slot uploads.Slot) {
	s.uploads.Clear(slot)
}

// SetUploadMode switches between archive and individual uploads.
func (s *Session) SetUploadMode(mode uploads.Mode) {
	s.uploads.SetMode(mode)
}

// SubmitUpload hands the selected files to the transport. The form is reset
// whatever the outcome.
func (s *Session) SubmitUpload(ctx context.Context) (uploads.Submission, error) {
	sub, err := s.uploads.Submit(ctx, s.transport)
	if err != nil {
		s.log.Warn("upload failed", logger.Error(err))
		return sub, err
	}
	return sub, nil
}

// ResetUpload discards the upload form without submitting.
func (s *Session) ResetUpload() {
	s.uploads.Reset()
	s.uploads.SetMode(uploads.ModeArchive)
}

func (s *Session) recordView(id int) {
	doc, err := s.docs.Find(id)
	if err != nil {
		return
	}
	s.history.Record(history.Viewed{
		ID:           doc.ID,
		Title:        doc.Title,
		Description:  doc.Description,
		Year:         doc.Year,
		DocumentType: doc.DocumentType,
		ViewedDate:   s.today(),
	})
	s.log.Debug("document opened", logger.Int("id", id))
}

func (s *Session) today() string {
	return s.now().Format(DateLayout)
}

func catalogIDs(rows []catalog.Managed) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}
