package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/marquee/internal/nav"
)

// AppTitle is shown at the left of the header bar.
const AppTitle = "Recovering Early Hollywood"

// Layout dimensions.
const (
	// chromeRows is the header, spacer, status and footer lines.
	chromeRows = 5

	// contentPadding is the horizontal margin on each side of the content.
	contentPadding = 2

	// minContentHeight keeps small terminals usable.
	minContentHeight = 3

	// LayoutCompactWidth is the width below which page tabs drop their labels.
	LayoutCompactWidth = 90

	// maxSearchRows caps the recent searches shown under the history list.
	maxSearchRows = 5
)

var pageTitles = map[nav.Page]string{
	nav.Home:    "Catalog",
	nav.History: "View History",
	nav.Flagged: "Flagged Documents",
	nav.Manager: "Documents Manager",
}

func (m Model) contentWidth() int {
	return max(m.width-2*contentPadding, 20)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeRows, minContentHeight)
}

// renderMain draws the header, the active page, the status line and the footer.
func (m Model) renderMain() string {
	var body string
	switch m.page() {
	case pageListing:
		body = m.renderListing()
	case pageDetail:
		body = m.renderDetail()
	case pageHistory:
		body = m.renderHistory()
	case pageFlagged:
		body = m.renderFlagged()
	case pageManager:
		body = m.renderManager()
	}

	body = lipgloss.NewStyle().
		Padding(0, contentPadding).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		m.renderStatus(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	bg := NewBgStyle(m.theme.Accent)
	styles := m.theme.Styles()
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))

	tabs := make([]string, 0, len(nav.Pages))
	for i, p := range nav.Pages {
		label := fmt.Sprintf("%d %s", i+1, pageTitles[p])
		if m.width < LayoutCompactWidth {
			label = fmt.Sprintf("%d", i+1)
		}
		if p == nav.Flagged && m.snap.FlagCount > 0 {
			label += fmt.Sprintf(" (%d)", m.snap.FlagCount)
		}
		style := text
		if p == m.snap.Nav.Page {
			style = text.Bold(true).Underline(true)
		}
		tabs = append(tabs, bg.Render(label, style))
	}

	title := bg.Render(" "+AppTitle+" ", text.Bold(true))
	line := title + bg.Render("   ", text) + bg.Join(tabs, "  ")
	return styles.Header.Padding(0).Render(bg.FillLine(line, m.width))
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	styles := m.theme.Styles()
	style := styles.SuccessText
	if m.statusErr {
		style = styles.DangerText
	}
	return style.Padding(0, contentPadding).Render(truncate(m.status, m.contentWidth()))
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Render(m.help.ShortHelpView(m.keys.pageHelp(m.page())))
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
