package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) handleManagerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(pageManager, len(m.snap.Managed), msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.managerSearch.Focus()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSelect):
		if len(m.snap.Managed) == 0 {
			return m, nil
		}
		row := m.snap.Managed[m.cursor[pageManager]]
		if err := m.session.ToggleSelected(row.ID); err != nil {
			m.setStatus(err.Error(), true)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		m.session.ToggleAllVisible()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		n := len(m.snap.Selected)
		if n == 0 {
			m.setStatus("Select at least one document to remove", true)
			return m, nil
		}
		m.modal = newConfirmModal(
			"Remove documents",
			fmt.Sprintf("Remove %d selected document(s) from the catalog?", n),
			func() tea.Cmd {
				removed := m.session.RemoveSelected()
				return statusCmd(fmt.Sprintf("Removed %d document(s)", len(removed)), false)
			},
		)
		return m, nil

	case key.Matches(msg, m.keys.AddDocuments):
		m.modal = newUploadModal(m.ctx, m.session)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.managerSearch.Value() != "" {
			m.managerSearch.SetValue("")
			m.session.SetManagerQuery("")
			m.refresh()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleManagerSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.managerSearch.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.managerSearch, cmd = m.managerSearch.Update(msg)
	m.session.SetManagerQuery(m.managerSearch.Value())
	m.cursor[pageManager] = 0
	m.refresh()
	return m, cmd
}

func (m Model) renderManager() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderSearchBox(m.managerSearch))
	b.WriteString("\n")

	all := "[ ]"
	if m.snap.AllVisibleSelected {
		all = "[x]"
	}
	summary := fmt.Sprintf("%s All   %d selected   %d of %d documents",
		all, len(m.snap.Selected), len(m.snap.Managed), m.snap.Total)
	b.WriteString(styles.MutedText.Render(summary))
	b.WriteString("\n\n")

	if len(m.snap.Managed) == 0 {
		b.WriteString(styles.FaintText.Render("No documents found."))
		return b.String()
	}

	titleWidth := max(width-44, 12)
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(6).Render(""),
		lipgloss.NewStyle().Width(titleWidth).Render("Title"),
		lipgloss.NewStyle().Width(7).Render("Year"),
		lipgloss.NewStyle().Width(14).Render("Type"),
		"Studio",
	)
	b.WriteString(styles.AccentText.Render(header))
	b.WriteString("\n")

	rows := make([]string, 0, len(m.snap.Managed))
	for i, row := range m.snap.Managed {
		check := "[ ]"
		if m.snap.IsSelected(row.ID) {
			check = "[x]"
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(6).Render(" "+check),
			lipgloss.NewStyle().Width(titleWidth).Render(truncate(row.Title, titleWidth-1)),
			lipgloss.NewStyle().Width(7).Render(row.Year),
			lipgloss.NewStyle().Width(14).Render(truncate(row.DocumentType, 13)),
			truncate(row.Studio, 16),
		)
		if i == m.cursor[pageManager] {
			line = styles.Selected.Width(width).Render(line)
		} else {
			line = styles.Text.Render(line)
		}
		rows = append(rows, line)
	}
	b.WriteString(m.scrollList(rows, m.cursor[pageManager], m.contentHeight()-6))
	return b.String()
}
