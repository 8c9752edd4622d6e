package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
)

func (m Model) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(pageListing, len(m.snap.Listing), msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.homeSearch.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if len(m.snap.Listing) == 0 {
			return m, nil
		}
		doc := m.snap.Listing[m.cursor[pageListing]]
		// A missing document leaves the listing as it was.
		if err := m.session.OpenDocument(doc.ID); err == nil {
			m.detailViewport.GotoTop()
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.CycleGenre):
		m.genre = m.nextGenre()
		m.applyHomeQuery()
		return m, nil

	case key.Matches(msg, m.keys.CycleDecade):
		m.decadeIdx = (m.decadeIdx + 1) % len(decades)
		m.applyHomeQuery()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.homeSearch.Value() != "" {
			m.homeSearch.SetValue("")
			m.applyHomeQuery()
		}
		return m, nil
	}
	return m, nil
}

// handleHomeSearchKey edits the catalog search box. The listing filters as
// the user types; enter records the search.
func (m Model) handleHomeSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.homeSearch.Blur()
		m.session.SubmitSearch(m.homeSearch.Value())
		m.applyHomeQuery()
		return m, nil
	case "esc":
		m.homeSearch.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.homeSearch, cmd = m.homeSearch.Update(msg)
	m.cursor[pageListing] = 0
	m.applyHomeQuery()
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.session.Back()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) renderListing() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderSearchBox(m.homeSearch))
	b.WriteString("\n")

	genre := m.genreLabel()
	if genre == "" {
		genre = "All genres"
	}
	filters := fmt.Sprintf("Genre: %s   Years: %s   %d of %d documents",
		genre, decades[m.decadeIdx].label, len(m.snap.Listing), m.snap.Total)
	b.WriteString(styles.MutedText.Render(filters))
	b.WriteString("\n\n")

	if len(m.snap.Listing) == 0 {
		b.WriteString(styles.FaintText.Render("No documents match your search."))
		return b.String()
	}

	rows := make([]string, 0, len(m.snap.Listing))
	for i, doc := range m.snap.Listing {
		rows = append(rows, m.renderCard(doc, i == m.cursor[pageListing], width))
	}
	b.WriteString(m.scrollList(rows, m.cursor[pageListing], m.contentHeight()-3))
	return b.String()
}

// renderCard draws one catalog entry as two lines.
func (m Model) renderCard(doc catalog.Document, selected bool, width int) string {
	styles := m.theme.Styles()

	marker := "  "
	if selected {
		marker = styles.AccentText.Render("▌ ")
	}
	title := styles.TitleText.Render(doc.Title)
	meta := styles.LinkText.Render(doc.Year) + styles.MutedText.Render(" · "+doc.Studio+" · "+doc.DocumentType)
	desc := styles.Text.Render(truncate(doc.Description, width-4))

	line1 := marker + title + "  " + meta
	line2 := "  " + desc
	if selected {
		line2 = styles.AccentText.Render("▌ ") + desc
	}
	return line1 + "\n" + line2
}

func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

// detailContent renders the full record shown in the detail viewport.
func (m Model) detailContent() string {
	if !m.snap.HasDetail {
		return ""
	}
	doc := m.snap.Detail
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(styles.MutedText.Render("← esc  Back to catalog"))
	b.WriteString("\n\n")
	b.WriteString(styles.TitleText.Render(doc.Title))
	b.WriteString("  ")
	b.WriteString(styles.Badge.Render(doc.DocumentType))
	b.WriteString("\n\n")

	fields := []struct{ label, value string }{
		{"Year", doc.Year},
		{"Studio", doc.Studio},
		{"Genre", doc.Genre},
		{"Director", doc.Director},
		{"Starring", strings.Join(doc.Actors, ", ")},
		{"Runtime", doc.Runtime},
		{"Language", doc.Language},
	}
	labelStyle := styles.MutedText.Width(10)
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString(styles.Text.Render(f.value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("Summary"))
	b.WriteString("\n")
	body := doc.FullDescription
	if body == "" {
		body = doc.Description
	}
	b.WriteString(styles.Text.Width(max(width-2, 20)).Render(body))

	if flagged := m.flagsFor(doc.ID); flagged > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.WarningText.Render(fmt.Sprintf("⚑ %d open review flag(s). See Flagged Documents.", flagged)))
	}
	return b.String()
}

func (m Model) flagsFor(id int) int {
	for _, e := range m.snap.Flagged {
		if e.ID == id {
			return len(e.Flags)
		}
	}
	return 0
}

func (m *Model) refreshDetailViewport() {
	if !m.ready {
		return
	}
	m.detailViewport.SetContent(m.detailContent())
}

func (m *Model) resizeDetailViewport() {
	m.detailViewport.Width = m.contentWidth()
	m.detailViewport.Height = m.contentHeight()
	m.refreshDetailViewport()
}

func (m Model) renderSearchBox(input interface{ View() string }) string {
	style := m.theme.Styles().Box
	if f, ok := input.(interface{ Focused() bool }); ok && f.Focused() {
		style = m.theme.Styles().FocusBox
	}
	return style.Width(max(m.contentWidth()-2, 20)).Render(input.View())
}

// scrollList joins rows and keeps the cursor row visible within height lines.
func (m Model) scrollList(rows []string, cursor, height int) string {
	if height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	start := 0
	used := 0
	// Walk back from the cursor until the window is full.
	for i := cursor; i >= 0; i-- {
		h := lipgloss.Height(rows[i])
		if used+h > height && i != cursor {
			break
		}
		used += h
		start = i
	}
	var out []string
	used = 0
	for i := start; i < len(rows); i++ {
		h := lipgloss.Height(rows[i])
		if used+h > height && i > cursor {
			break
		}
		out = append(out, rows[i])
		used += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}
