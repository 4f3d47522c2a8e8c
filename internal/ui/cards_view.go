package ui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/grid"
)

const (
	gapCells = grid.Gap / 8  // horizontal gap between cards
	gapLines = grid.Gap / 16 // blank lines between rows
)

// RenderGrid draws a laid-out grid. cursor is the card under the cursor, or
// -1, and is only highlighted when focused is set.
func RenderGrid(g grid.Grid, cursor int, focused bool) string {
	if g.Len() == 0 {
		return ""
	}
	rows := make([]string, 0, len(g.Rows))
	for r, row := range g.Rows {
		cells := make([]string, 0, len(row))
		for j, i := range row {
			s := renderCard(g, g.Cards[i], focused && i == cursor, i == g.Selected)
			if j < len(row)-1 {
				s = lipgloss.NewStyle().MarginRight(gapCells).Render(s)
			}
			cells = append(cells, s)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if r < len(g.Rows)-1 {
			line = lipgloss.NewStyle().MarginBottom(gapLines).Render(line)
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// rowHeight is the number of terminal lines a rendered row occupies,
// borders included.
func rowHeight(g grid.Grid, r int) int {
	c := g.Cards[g.Rows[r][0]]
	return bodyHeight(g, c) + 2
}

// RowOffsets returns the first line of every row relative to the top of
// the rendered grid.
func RowOffsets(g grid.Grid) []int {
	offsets := make([]int, len(g.Rows))
	y := 0
	for r := range g.Rows {
		offsets[r] = y
		y += rowHeight(g, r) + gapLines
	}
	return offsets
}

func bodyHeight(g grid.Grid, c grid.Card) int {
	h := c.Height
	if c.Spec.HasImage() {
		h += g.ImageLines
	}
	return max(1, h)
}

func renderCard(g grid.Grid, c grid.Card, cursor, selected bool) string {
	w := g.InnerWidth
	var lines []string
	if c.Spec.HasImage() && g.ImageLines > 0 {
		lines = append(lines, renderImageBand(c.Spec.Image, w, g.ImageLines))
	}
	for _, l := range c.Lines {
		lines = append(lines, renderLine(l))
	}

	style := cardStyle
	switch {
	case cursor && selected:
		style = cursorCardStyle.BorderForeground(selectedCardStyle.GetBorderTopForeground())
	case cursor:
		style = cursorCardStyle
	case selected:
		style = selectedCardStyle
	}
	return style.
		Width(w + 2).
		Height(bodyHeight(g, c)).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderLine(l grid.Line) string {
	switch l.Kind {
	case grid.LineTitle:
		return cardTitleStyle.Render(l.Text)
	case grid.LineMore:
		return cardMoreStyle.Render(l.Text)
	case grid.LineBadges:
		parts := make([]string, 0, len(l.Badges)+1)
		if l.Label != "" {
			parts = append(parts, cardLabelStyle.Render(l.Label+":"))
		}
		for _, b := range l.Badges {
			parts = append(parts, renderBadge(b))
		}
		return strings.Join(parts, " ")
	default:
		if l.Label == "" {
			return cardTextStyle.Render(l.Text)
		}
		return cardLabelStyle.Render(l.Label+":") + " " + cardTextStyle.Render(l.Text)
	}
}

func renderBadge(b string) string {
	return badgeStyle.Background(lipgloss.Color(card.BadgeColor(b))).Render(b)
}

// renderImageBand draws the placeholder for a card image. Images are not
// fetched; the band names where the image lives.
func renderImageBand(src string, width, height int) string {
	label := "▣ " + imageLabel(src)
	return imageStyle.
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(grid.Ellipsize(label, width))
}

func imageLabel(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return src
	}
	return u.Host
}
