package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}

	if IsBelowMinimum(m.termWidth, m.termHeight) {
		return m.renderSizeOverlay()
	}

	if m.mode == infoMode {
		return m.viewInfoMode()
	}

	layout := CalculateLayout(m.termWidth, m.termHeight)
	parts := []string{}
	if layout.ShowHeader {
		parts = append(parts, m.renderHeader(layout.BodyWidth))
	}
	parts = append(parts, m.viewport.View())
	if layout.ShowFooter {
		parts = append(parts, m.renderFooter())
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderHeader draws the page title with the reload spinner and a rule.
func (m Model) renderHeader(width int) string {
	title := "datacard"
	if m.doc != nil && strings.TrimSpace(m.doc.Title) != "" {
		title = m.doc.Title
	}
	line := headerStyle.Render(title)
	if m.loading {
		line += " " + m.spinner.View()
	}
	if m.statusMessage != "" {
		if m.statusPositive {
			line += statusPositiveStyle.Render(m.statusMessage)
		} else {
			line += statusNegativeStyle.Render(m.statusMessage)
		}
	}
	rule := helpStyle.Render(strings.Repeat("─", max(0, width)))
	return lipgloss.JoinVertical(lipgloss.Left, truncateText(line, width), rule)
}

// renderFooter creates the bottom block: help, then selection | theme | scroll.
func (m Model) renderFooter() string {
	help := helpStyle.Render("↑↓←→: Move, Tab: Next grid, Enter: Select, y: Copy, r: Reload, q: Quit")
	separator := helpStyle.Render(" | ")
	status := lipgloss.JoinHorizontal(lipgloss.Left,
		"SELECTION: ", themeNameStyle.Render(m.selectionLabel()),
		separator,
		"THEME: ", themeNameStyle.Render(m.Config.Theme),
		separator,
		helpStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)),
	)
	width := max(1, m.termWidth-LayoutSideMargin)
	return lipgloss.JoinVertical(lipgloss.Left, truncateText(help, width), truncateText(status, width))
}

// truncateText clips a string to a max visual width
func truncateText(s string, maxLength int) string {
	if lipgloss.Width(s) <= maxLength {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(maxLength).Render(s)
}
