package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleFlaggedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(pageFlagged, len(m.snap.Flagged), msg) {
		return m, nil
	}
	if len(m.snap.Flagged) == 0 {
		return m, nil
	}
	if key.Matches(msg, m.keys.CollapseAll) {
		m.session.CollapseFlags()
		m.refresh()
		return m, nil
	}
	entry := m.snap.Flagged[m.cursor[pageFlagged]]

	switch {
	case key.Matches(msg, m.keys.ToggleFlags):
		m.session.ToggleFlagExpanded(entry.ID)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.OpenFlagged):
		if err := m.session.OpenFromFlagged(entry.ID); err == nil {
			m.detailViewport.GotoTop()
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m Model) renderFlagged() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(styles.TitleText.Render("Flagged Documents"))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %d document(s), %d flag(s)", len(m.snap.Flagged), m.snap.FlagCount)))
	b.WriteString("\n\n")

	if len(m.snap.Flagged) == 0 {
		b.WriteString(styles.FaintText.Render("No flagged documents."))
		return b.String()
	}

	rows := make([]string, 0, len(m.snap.Flagged))
	for i, e := range m.snap.Flagged {
		marker := "  "
		if i == m.cursor[pageFlagged] {
			marker = styles.AccentText.Render("▌ ")
		}
		arrow := "▸"
		if m.snap.Expanded[e.ID] {
			arrow = "▾"
		}

		var row strings.Builder
		row.WriteString(marker)
		row.WriteString(styles.WarningText.Render(arrow + " ⚑ "))
		row.WriteString(styles.TitleText.Render(e.Title))
		row.WriteString("  ")
		row.WriteString(styles.LinkText.Render(e.Year))
		row.WriteString(styles.MutedText.Render(fmt.Sprintf(" · %s · %d flag(s)", e.DocumentType, len(e.Flags))))
		row.WriteString("\n    ")
		row.WriteString(styles.Text.Render(truncate(e.Description, width-6)))

		if m.snap.Expanded[e.ID] {
			for _, f := range e.Flags {
				row.WriteString("\n      ")
				row.WriteString(styles.DangerText.Render(f.User))
				row.WriteString(styles.MutedText.Render(" on " + f.Date + ": "))
				row.WriteString(styles.Text.Render(truncate(f.Reason, width-len(f.User)-len(f.Date)-12)))
			}
		}
		rows = append(rows, row.String())
	}
	b.WriteString(m.scrollList(rows, m.cursor[pageFlagged], m.contentHeight()-2))
	return b.String()
}
