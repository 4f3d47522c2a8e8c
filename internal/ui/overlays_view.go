package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/datacard/internal/grid"
)

// renderSizeOverlay shows a centered panel with current and required dimensions
func (m Model) renderSizeOverlay() string {
	title := titleStyle.Render("Terminal too small")
	info := helpStyle.Render(
		fmt.Sprintf("Current: %dx%d | Required: %dx%d",
			m.termWidth, m.termHeight, MinWidth, MinHeight),
	)

	box := lipgloss.JoinVertical(lipgloss.Center, title, info)
	return lipgloss.Place(
		m.termWidth, m.termHeight,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) viewInfoMode() string {
	if m.activeDetail == nil {
		return appStyle.Render(lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, "Error: No detail state"))
	}

	// Build info lines with the popup background to avoid black gaps
	bg := popupStyle.GetBackground()
	bgFill := lipgloss.NewStyle().Background(bg)
	titleStyleLocal := errorTitleStyle.Background(bg)
	labelStyle := helpStyle.Background(bg)
	valueStyle := errorTextStyle.Background(bg)
	textStyle := itemStyle.Background(bg)

	wrapWidth := min(max(m.termWidth-10, 20), 80)

	var raw []string
	if strings.TrimSpace(m.activeDetail.Title) != "" {
		raw = append(raw, titleStyleLocal.Render(m.activeDetail.Title))
	}

	if strings.TrimSpace(m.activeDetail.Value) != "" {
		raw = append(raw, "")
		label := "Value:"
		if m.activeDetail.KeyLabel != "" {
			label = m.activeDetail.KeyLabel + ":"
		}
		raw = append(raw, labelStyle.Render(label))
		for _, ln := range grid.WrapText(m.activeDetail.Value, wrapWidth) {
			raw = append(raw, valueStyle.Render(ln))
		}
	}

	if strings.TrimSpace(m.activeDetail.Description) != "" {
		raw = append(raw, "")
		for _, ln := range grid.WrapText(m.activeDetail.Description, wrapWidth) {
			raw = append(raw, textStyle.Render(ln))
		}
	}

	if len(m.activeDetail.Meta) > 0 {
		raw = append(raw, "")
		for _, meta := range m.activeDetail.Meta {
			raw = append(raw, labelStyle.Render(meta.Label+": ")+textStyle.Render(meta.Value))
		}
	}

	raw = append(raw, "")
	raw = append(raw, labelStyle.Render("y: copy details • r: reload • any key: close"))

	maxW := 1
	for _, line := range raw {
		maxW = max(maxW, lipgloss.Width(line))
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		pad := max(0, maxW-lipgloss.Width(line))
		lines = append(lines, line+bgFill.Render(strings.Repeat(" ", pad)))
	}

	popup := popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return appStyle.Render(lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, popup))
}
