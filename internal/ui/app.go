package ui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/logger"
	"github.com/five82/marquee/internal/nav"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// pageKind is the screen being drawn. Home splits into listing and detail.
type pageKind int

const (
	pageListing pageKind = iota
	pageDetail
	pageHistory
	pageFlagged
	pageManager
	pageCount
)

// decade is one step of the year filter cycle.
type decade struct {
	label    string
	from, to int
}

var decades = []decade{
	{label: "Any year"},
	{label: "1910s", from: 1910, to: 1919},
	{label: "1920s", from: 1920, to: 1929},
	{label: "1930s", from: 1930, to: 1939},
	{label: "1940s", from: 1940, to: 1949},
	{label: "1950s", from: 1950, to: 1959},
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *state.Session
	ThemeName string
	PrefsPath string
	Log       logger.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	session   *state.Session
	prefsPath string
	log       logger.Logger

	// UI state
	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int
	ready  bool

	// Data state
	snap state.Snapshot

	// Per-page cursor
	cursor [pageCount]int

	// Catalog filters
	homeSearch textinput.Model
	genre      string // "" = all genres
	decadeIdx  int // index into decades

	managerSearch textinput.Model

	detailViewport viewport.Model

	showHelp bool
	modal    Modal

	status    string
	statusErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	session := opts.Session
	if session == nil {
		session = state.New(state.Options{Log: log})
	}

	homeSearch := textinput.New()
	homeSearch.Placeholder = "Search by title, year, or studio..."
	homeSearch.Prompt = "/ "
	homeSearch.CharLimit = 120

	managerSearch := textinput.New()
	managerSearch.Placeholder = "Search documents by title, year, or studio..."
	managerSearch.Prompt = "/ "
	managerSearch.CharLimit = 120

	m := Model{
		ctx:           ctx,
		session:       session,
		prefsPath:     opts.PrefsPath,
		log:           log,
		theme:         GetTheme(themeName),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		homeSearch:    homeSearch,
		managerSearch: managerSearch,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.detailViewport = viewport.New(m.contentWidth(), m.contentHeight())
		}
		m.ready = true
		m.resizeDetailViewport()
		return m, nil

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		m.refresh()
		return m, cmd
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.homeSearch.Focused() {
		return m.handleHomeSearchKey(msg)
	}
	if m.managerSearch.Focused() {
		return m.handleManagerSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Login):
		m.modal = newAuthModal(m.log)
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn("save prefs failed", logger.Error(err))
			}
		}
		m.refreshDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.navigate(m.nextPage(1))
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.navigate(m.nextPage(-1))
		return m, nil

	case key.Matches(msg, m.keys.PageHome):
		m.navigate(nav.Home)
		return m, nil

	case key.Matches(msg, m.keys.PageHistory):
		m.navigate(nav.History)
		return m, nil

	case key.Matches(msg, m.keys.PageFlagged):
		m.navigate(nav.Flagged)
		return m, nil

	case key.Matches(msg, m.keys.PageManager):
		m.navigate(nav.Manager)
		return m, nil
	}

	// Page-specific keys
	switch m.page() {
	case pageListing:
		return m.handleListingKey(msg)
	case pageDetail:
		return m.handleDetailKey(msg)
	case pageHistory:
		return m.handleHistoryKey(msg)
	case pageFlagged:
		return m.handleFlaggedKey(msg)
	case pageManager:
		return m.handleManagerKey(msg)
	}

	return m, nil
}

// page maps the navigation state to the screen being drawn.
func (m Model) page() pageKind {
	switch m.snap.Nav.Page {
	case nav.History:
		return pageHistory
	case nav.Flagged:
		return pageFlagged
	case nav.Manager:
		return pageManager
	default:
		if m.snap.HasDetail {
			return pageDetail
		}
		return pageListing
	}
}

// nextPage returns the page delta steps away in tab order.
func (m Model) nextPage(delta int) nav.Page {
	current := 0
	for i, p := range nav.Pages {
		if p == m.snap.Nav.Page {
			current = i
			break
		}
	}
	n := len(nav.Pages)
	return nav.Pages[((current+delta)%n+n)%n]
}

func (m *Model) navigate(page nav.Page) {
	m.session.NavigateTo(page)
	m.status = ""
	m.refresh()
}

// refresh pulls a new snapshot and keeps cursors in range.
func (m *Model) refresh() {
	m.snap = m.session.Snapshot()
	m.clampCursor(pageListing, len(m.snap.Listing))
	m.clampCursor(pageHistory, len(m.snap.Viewed))
	m.clampCursor(pageFlagged, len(m.snap.Flagged))
	m.clampCursor(pageManager, len(m.snap.Managed))
	m.refreshDetailViewport()

	// The last document of a genre was removed.
	if m.genre != "" && !slices.Contains(m.snap.Genres, m.genre) {
		m.genre = ""
		m.applyHomeQuery()
	}
}

func (m *Model) clampCursor(p pageKind, n int) {
	switch {
	case n == 0:
		m.cursor[p] = 0
	case m.cursor[p] >= n:
		m.cursor[p] = n - 1
	case m.cursor[p] < 0:
		m.cursor[p] = 0
	}
}

// moveCursor applies list navigation keys to the cursor of p.
func (m *Model) moveCursor(p pageKind, n int, msg tea.KeyMsg) bool {
	if n == 0 {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor[p] > 0 {
			m.cursor[p]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[p] < n-1 {
			m.cursor[p]++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor[p] = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor[p] = n - 1
	default:
		return false
	}
	return true
}

// applyHomeQuery pushes the search box and filter cycles to the session.
func (m *Model) applyHomeQuery() {
	d := decades[m.decadeIdx]
	m.session.SetHomeQuery(catalog.Query{
		Text:     m.homeSearch.Value(),
		Genre:    m.genreLabel(),
		YearFrom: d.from,
		YearTo:   d.to,
	})
	m.refresh()
}

// genreLabel returns the active genre filter, or "" for all genres.
func (m Model) genreLabel() string {
	return m.genre
}

// nextGenre steps through the genres in order, then back to all genres.
func (m Model) nextGenre() string {
	i := slices.Index(m.snap.Genres, m.genre)
	if m.genre == "" {
		i = -1
	}
	if i+1 >= len(m.snap.Genres) {
		return ""
	}
	return m.snap.Genres[i+1]
}

func (m *Model) setStatus(text string, err bool) {
	m.status = text
	m.statusErr = err
}

// Messages

type statusMsg struct {
	text string
	err  bool
}

// Commands

func statusCmd(text string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
