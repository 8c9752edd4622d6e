package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/logger"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

type memSaver struct{ content string }

func (m *memSaver) Save(content string) (string, error) {
	m.content = content
	return "/tmp/viewing-history.csv", nil
}

func newTestModel(t *testing.T, saver *memSaver) Model {
	t.Helper()
	opts := state.Options{
		Clock: func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) },
	}
	if saver != nil {
		opts.Saver = saver
	}
	m := New(Options{Session: state.New(opts)})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// press sends keys in order and returns the model and last command.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func TestViewBeforeAndAfterResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q", got)
	}

	m = newTestModel(t, nil)
	view := m.View()
	if !strings.Contains(view, AppTitle) {
		t.Fatalf("View missing title")
	}
	if !strings.Contains(view, "Sunset Boulevard") {
		t.Fatalf("View missing first catalog document")
	}
}

func TestOpenDocumentAndBack(t *testing.T) {
	m := newTestModel(t, nil)
	before := len(m.snap.Viewed)

	m, _ = press(t, m, runes("j"), enterKey)
	if m.page() != pageDetail {
		t.Fatalf("page = %v, want detail", m.page())
	}
	if m.snap.Detail.ID != 2 {
		t.Fatalf("detail id = %d, want 2", m.snap.Detail.ID)
	}
	if len(m.snap.Viewed) != before+1 || m.snap.Viewed[0].ID != 2 {
		t.Fatalf("history not recorded: %+v", m.snap.Viewed)
	}
	if m.snap.Viewed[0].ViewedDate != "Oct 18, 2026" {
		t.Fatalf("viewed date = %q", m.snap.Viewed[0].ViewedDate)
	}
	if !strings.Contains(m.View(), "The Jazz Singer") {
		t.Fatalf("detail view missing title")
	}

	m, _ = press(t, m, escKey)
	if m.page() != pageListing {
		t.Fatalf("page after esc = %v, want listing", m.page())
	}
}

func TestPageSwitching(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("2"))
	if m.page() != pageHistory {
		t.Fatalf("page = %v, want history", m.page())
	}
	m, _ = press(t, m, tabKey)
	if m.page() != pageFlagged {
		t.Fatalf("page after tab = %v, want flagged", m.page())
	}
	m, _ = press(t, m, runes("4"), tabKey)
	if m.page() != pageListing {
		t.Fatalf("tab should wrap to catalog, got %v", m.page())
	}
}

func TestHomeSearchFiltersAndRecords(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("/"))
	if !m.homeSearch.Focused() {
		t.Fatalf("search not focused")
	}
	m, _ = press(t, m, runes("1"), runes("9"), runes("2"), runes("7"))
	if len(m.snap.Listing) != 2 {
		t.Fatalf("listing = %d documents, want 2", len(m.snap.Listing))
	}
	// q goes to the search box, not quit
	m, _ = press(t, m, runes("q"))
	if m.homeSearch.Value() != "1927q" {
		t.Fatalf("search value = %q, want 1927q", m.homeSearch.Value())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, enterKey)

	if m.homeSearch.Focused() {
		t.Fatalf("search still focused after enter")
	}
	if m.snap.Searches[0].Query != "1927" {
		t.Fatalf("latest search = %q, want 1927", m.snap.Searches[0].Query)
	}
}

func TestGenreCycle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("f"))
	genre := m.genreLabel()
	if genre == "" {
		t.Fatalf("genre filter not applied")
	}
	for _, doc := range m.snap.Listing {
		if !strings.Contains(strings.ToLower(doc.Genre), strings.ToLower(genre)) {
			t.Fatalf("%s does not match genre %s", doc.Title, genre)
		}
	}

	for range m.snap.Genres {
		m, _ = press(t, m, runes("f"))
	}
	if m.genreLabel() != "" || len(m.snap.Listing) != m.snap.Total {
		t.Fatalf("genre cycle did not wrap to all genres")
	}
}

func TestGenreFilterDroppedWhenLastDocumentRemoved(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("f"))
	if m.genreLabel() != "Adventure" || m.snap.HomeQuery.Genre != "Adventure" {
		t.Fatalf("genre = %q, query genre = %q", m.genreLabel(), m.snap.HomeQuery.Genre)
	}

	m, _ = press(t, m, runes("4"), runes("G"), runes("k"), spaceKey)
	if len(m.snap.Selected) != 1 || m.snap.Selected[0] != 5 {
		t.Fatalf("selected = %v, want [5]", m.snap.Selected)
	}
	m, _ = press(t, m, runes("d"), runes("y"), runes("1"))

	if m.genreLabel() != m.snap.HomeQuery.Genre {
		t.Fatalf("label %q differs from filter %q", m.genreLabel(), m.snap.HomeQuery.Genre)
	}
	if m.genreLabel() != "" || len(m.snap.Listing) != m.snap.Total {
		t.Fatalf("genre filter kept after its last document went: %q", m.genreLabel())
	}
	if !strings.Contains(m.View(), "All genres") {
		t.Fatalf("view does not show all genres")
	}
}

func TestFlaggedToggleAndOpen(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("3"), enterKey)
	first := m.snap.Flagged[0]
	if !m.snap.Expanded[first.ID] {
		t.Fatalf("entry %d not expanded", first.ID)
	}
	if !strings.Contains(m.View(), first.Flags[0].User) {
		t.Fatalf("expanded view missing flag author")
	}

	m, _ = press(t, m, runes("o"))
	if m.page() != pageDetail || m.snap.Detail.ID != first.ID {
		t.Fatalf("open from flagged: page %v detail %d", m.page(), m.snap.Detail.ID)
	}
}

func TestFlaggedCollapseAll(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("3"), enterKey, runes("j"), enterKey)
	if len(m.snap.Expanded) != 2 {
		t.Fatalf("expanded = %v, want two entries", m.snap.Expanded)
	}
	m, _ = press(t, m, runes("c"))
	if len(m.snap.Expanded) != 0 {
		t.Fatalf("collapse all left %v open", m.snap.Expanded)
	}
}

func TestManagerSelectAndRemove(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("4"), spaceKey)
	if len(m.snap.Selected) != 1 || m.snap.Selected[0] != 1 {
		t.Fatalf("selected = %v, want [1]", m.snap.Selected)
	}

	m, _ = press(t, m, runes("a"))
	if !m.snap.AllVisibleSelected {
		t.Fatalf("select all did not select every row")
	}
	m, _ = press(t, m, runes("a"))
	if len(m.snap.Selected) != 0 {
		t.Fatalf("second select all should clear, got %v", m.snap.Selected)
	}

	m, _ = press(t, m, runes("d"))
	if m.modal != nil || !m.statusErr {
		t.Fatalf("remove with no selection should only set an error status")
	}

	m, _ = press(t, m, runes("j"), spaceKey, runes("d"))
	if m.modal == nil {
		t.Fatalf("remove did not open confirmation")
	}
	m, cmd := press(t, m, runes("y"))
	if m.modal != nil {
		t.Fatalf("modal still open after confirm")
	}
	if m.snap.Total != 5 || len(m.snap.Selected) != 0 {
		t.Fatalf("total %d selected %v after remove", m.snap.Total, m.snap.Selected)
	}
	msg, ok := cmd().(statusMsg)
	if !ok || msg.text != "Removed 1 document(s)" {
		t.Fatalf("status = %+v", msg)
	}
}

func TestManagerSearchRetainsVisibleSelection(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("4"), runes("a"))
	m, _ = press(t, m, runes("/"), runes("k"), runes("i"), runes("n"), runes("g"), escKey)
	if len(m.snap.Managed) != 1 {
		t.Fatalf("managed = %d rows, want 1", len(m.snap.Managed))
	}
	if len(m.snap.Selected) != 1 || m.snap.Selected[0] != 5 {
		t.Fatalf("selected = %v, want [5]", m.snap.Selected)
	}
}

func TestHistoryExportAndClear(t *testing.T) {
	saver := &memSaver{}
	m := newTestModel(t, saver)

	m, _ = press(t, m, runes("2"), runes("x"))
	if !strings.HasPrefix(saver.content, "Title,Year,Document Type,Description,Viewed Date\n") {
		t.Fatalf("export content = %q", saver.content)
	}
	if m.statusErr || !strings.Contains(m.status, "/tmp/viewing-history.csv") {
		t.Fatalf("status = %q", m.status)
	}

	m, _ = press(t, m, runes("C"))
	if m.modal == nil {
		t.Fatalf("clear did not ask for confirmation")
	}
	m, _ = press(t, m, escKey)
	if len(m.snap.Viewed) == 0 {
		t.Fatalf("cancel cleared history")
	}
	m, _ = press(t, m, runes("C"), enterKey)
	if len(m.snap.Viewed) != 0 {
		t.Fatalf("history not cleared: %d entries", len(m.snap.Viewed))
	}
}

func TestExportWithoutSaverReportsError(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("2"), runes("x"))
	if !m.statusErr {
		t.Fatalf("expected error status, got %q", m.status)
	}
}

func TestUploadDialog(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("4"), runes("u"))
	if _, ok := m.modal.(*uploadModal); !ok {
		t.Fatalf("modal = %T, want upload dialog", m.modal)
	}

	m, _ = press(t, m, enterKey)
	if m.modal == nil {
		t.Fatalf("empty submit closed the dialog")
	}

	m, _ = press(t, m, runes("scans.pdf"), enterKey)
	if m.modal == nil {
		t.Fatalf("wrong extension closed the dialog")
	}

	for range "scans.pdf" {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, cmd := press(t, m, runes("scans.zip"), enterKey)
	if m.modal != nil {
		t.Fatalf("dialog still open after submit")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || msg.err || msg.text != "Submitted 1 file(s) for review" {
		t.Fatalf("status = %+v", msg)
	}
	if len(m.snap.UploadFiles) != 0 {
		t.Fatalf("upload form not reset: %v", m.snap.UploadFiles)
	}
}

func TestAuthDialogLogsWithoutPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.log")
	log, err := logger.New("info", path)
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	m := New(Options{Log: log})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	m, _ = press(t, m, runes("L"))
	if _, ok := m.modal.(*authModal); !ok {
		t.Fatalf("modal = %T, want auth dialog", m.modal)
	}
	if !strings.Contains(m.View(), "Welcome Back") {
		t.Fatalf("login view missing title")
	}

	// Sign-up asks for the name and a matching confirmation.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if !strings.Contains(m.View(), "Join Us") {
		t.Fatalf("mode switch did not show sign-up")
	}
	m, _ = press(t, m, runes("Ada Lovelace"), tabKey, runes("ada@example.com"), tabKey,
		runes("silent-film"), tabKey, runes("silent-flim"), enterKey)
	if m.modal == nil {
		t.Fatalf("mismatched passwords closed the dialog")
	}
	if !strings.Contains(m.View(), "Passwords do not match") {
		t.Fatalf("mismatch not reported")
	}

	// Back to login; switching clears the form.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT}, enterKey)
	if m.modal == nil || !strings.Contains(m.View(), "Email is required") {
		t.Fatalf("empty login should stay open with an error")
	}

	m, cmd := press(t, m, runes("ada@example.com"), tabKey, runes("silent-film"), enterKey)
	if m.modal != nil {
		t.Fatalf("dialog still open after login")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || msg.err || msg.text != "Login received for ada@example.com" {
		t.Fatalf("status = %+v", msg)
	}

	if err := log.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"email":"ada@example.com"`) {
		t.Fatalf("log missing login entry: %s", data)
	}
	if strings.Contains(string(data), "silent-film") {
		t.Fatalf("log contains the password: %s", data)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(t, m, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help not shown")
	}
	m, _ = press(t, m, runes("j"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
	if m.cursor[pageListing] != 0 {
		t.Fatalf("key that closed help also moved the cursor")
	}
}

func TestCycleThemeSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{PrefsPath: path})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	m, _ = press(t, m, runes("T"))
	if m.theme.Name != "Dracula" {
		t.Fatalf("theme = %q, want Dracula", m.theme.Name)
	}
	p, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Dracula" {
		t.Fatalf("saved theme = %q, want Dracula", p.Theme)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}
