package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/logger"
)

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(pageHistory, len(m.snap.Viewed), msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Export):
		path, err := m.session.ExportHistory()
		if err != nil {
			m.log.Warn("history export failed", logger.Error(err))
			m.setStatus("Export failed: "+err.Error(), true)
			return m, nil
		}
		m.setStatus("Exported viewing history to "+path, false)
		return m, nil

	case key.Matches(msg, m.keys.ClearHistory):
		m.modal = newConfirmModal(
			"Clear history",
			"Remove every viewed document from your history?",
			func() tea.Cmd {
				m.session.ClearHistory()
				return statusCmd("History cleared", false)
			},
		)
		return m, nil
	}
	return m, nil
}

func (m Model) renderHistory() string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(styles.TitleText.Render("Recently Viewed"))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("  %d document(s)", len(m.snap.Viewed))))
	b.WriteString("\n\n")

	if len(m.snap.Viewed) == 0 {
		b.WriteString(styles.FaintText.Render("No documents viewed yet."))
	} else {
		rows := make([]string, 0, len(m.snap.Viewed))
		for i, v := range m.snap.Viewed {
			marker := "  "
			if i == m.cursor[pageHistory] {
				marker = styles.AccentText.Render("▌ ")
			}
			line := marker + styles.TitleText.Render(v.Title) + "  " +
				styles.LinkText.Render(v.Year) +
				styles.MutedText.Render(" · "+v.DocumentType+" · viewed "+v.ViewedDate)
			rows = append(rows, line+"\n  "+styles.Text.Render(truncate(v.Description, width-4)))
		}
		listHeight := m.contentHeight() - 4 - min(len(m.snap.Searches), maxSearchRows)
		b.WriteString(m.scrollList(rows, m.cursor[pageHistory], listHeight))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("Recent Searches"))
	b.WriteString("\n")
	if len(m.snap.Searches) == 0 {
		b.WriteString(styles.FaintText.Render("No searches yet."))
		return b.String()
	}
	for i, s := range m.snap.Searches {
		if i == maxSearchRows {
			break
		}
		b.WriteString(styles.Text.Render("  “" + s.Query + "”"))
		b.WriteString(styles.MutedText.Render("  " + s.Date))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
