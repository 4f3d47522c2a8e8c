package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/datacard/internal/card"
)

// LineKind tells a renderer how to draw a content line.
type LineKind int

const (
	LineTitle LineKind = iota
	LineText
	LineBadges
	LineMore
)

// MoreMarker is drawn in place of content that did not fit the card.
const MoreMarker = "…"

// Line is one row of text cells inside a card. Label is set on the first
// line of a field only.
type Line struct {
	Kind   LineKind
	Label  string
	Text   string
	Badges []string
}

// Card is a laid-out card.
type Card struct {
	Index     int
	Spec      card.CardSpec
	Lines     []Line
	Height    int // content lines, uniform across the card's row
	Truncated bool
}

// Grid is the result of arranging cards into rows.
type Grid struct {
	Key        string
	CardWidth  int // pixels
	MaxHeight  int // pixels
	InnerWidth int // cells available for content
	ImageLines int // cells reserved for the image band, on cards with an image
	Budget     int // content lines available on cards without an image
	Columns    int
	Cards      []Card
	Rows       [][]int
	Selected   int // index of the selected card, -1 when none
}

// Len reports the number of cards.
func (g Grid) Len() int { return len(g.Cards) }

// Build lays out specs in input order. available is the container width in
// pixels; non-positive means the container does not constrain the row.
func Build(specs []card.CardSpec, cfg Config, available int, m Metrics) Grid {
	cfg = cfg.WithDefaults()
	m = m.normalized()

	g := Grid{
		Key:        cfg.Key,
		CardWidth:  cfg.CardWidth,
		MaxHeight:  cfg.MaxHeight,
		InnerWidth: max(1, (cfg.CardWidth-2*CardPadding)/m.CellWidth),
		ImageLines: ImageBand / m.LineHeight,
		Budget:     max(1, (cfg.MaxHeight-2*CardPadding)/m.LineHeight),
		Columns:    Columns(available, cfg.CardWidth),
		Selected:   -1,
	}
	if g.Columns == 0 {
		g.Columns = max(1, len(specs))
	}

	g.Cards = make([]Card, len(specs))
	for i, spec := range specs {
		budget := g.Budget
		if spec.HasImage() {
			budget = max(1, (cfg.MaxHeight-2*CardPadding-ImageBand)/m.LineHeight)
		}
		lines := contentLines(spec, g.InnerWidth)
		lines, truncated := capLines(lines, budget, g.InnerWidth)
		g.Cards[i] = Card{
			Index:     i,
			Spec:      spec,
			Lines:     lines,
			Height:    len(lines),
			Truncated: truncated,
		}
	}

	for start := 0; start < len(g.Cards); start += g.Columns {
		end := min(start+g.Columns, len(g.Cards))
		row := make([]int, 0, end-start)
		tallest := 0
		for i := start; i < end; i++ {
			row = append(row, i)
			tallest = max(tallest, g.cardBlockHeight(i))
		}
		for _, i := range row {
			c := &g.Cards[i]
			c.Height = tallest
			if c.Spec.HasImage() {
				c.Height -= g.ImageLines
			}
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

// cardBlockHeight is the line count of a card including its image band.
func (g Grid) cardBlockHeight(i int) int {
	h := len(g.Cards[i].Lines)
	if g.Cards[i].Spec.HasImage() {
		h += g.ImageLines
	}
	return h
}

func contentLines(spec card.CardSpec, width int) []Line {
	var lines []Line
	if spec.HasTitle() {
		for _, t := range WrapText(spec.Title, width) {
			lines = append(lines, Line{Kind: LineTitle, Text: t})
		}
	}
	for _, f := range spec.Fields {
		if f.Kind == card.KindBadge {
			lines = append(lines, badgeLines(f, width)...)
			continue
		}
		lines = append(lines, textLines(f, width)...)
	}
	return lines
}

func textLines(f card.CardField, width int) []Line {
	prefix := f.Name + ":"
	wrapped := WrapText(prefix+" "+f.Value, width)
	lines := make([]Line, 0, len(wrapped))
	for i, w := range wrapped {
		l := Line{Kind: LineText, Text: w}
		if i == 0 && strings.HasPrefix(w, prefix) {
			l.Label = f.Name
			l.Text = strings.TrimPrefix(strings.TrimPrefix(w, prefix), " ")
		}
		lines = append(lines, l)
	}
	return lines
}

// badgeLines packs pills after the field label, wrapping when a pill would
// overflow the card.
func badgeLines(f card.CardField, width int) []Line {
	cur := Line{Kind: LineBadges, Label: f.Name}
	used := lipgloss.Width(f.Name) + 2
	var lines []Line
	for _, b := range f.Badges() {
		b = Ellipsize(b, width-badgePad)
		cost := lipgloss.Width(b) + badgePad
		if len(cur.Badges) > 0 && used+cost > width {
			lines = append(lines, cur)
			cur = Line{Kind: LineBadges}
			used = 0
		}
		cur.Badges = append(cur.Badges, b)
		used += cost + 1
	}
	return append(lines, cur)
}

// capLines enforces the height budget. Overflowing content is cut and the
// last kept line becomes the overflow marker.
func capLines(lines []Line, budget, width int) ([]Line, bool) {
	if len(lines) <= budget {
		return lines, false
	}
	kept := make([]Line, budget)
	copy(kept, lines[:budget])
	last := kept[budget-1]
	if budget == 1 && last.Kind != LineBadges {
		room := width
		if last.Label != "" {
			room -= lipgloss.Width(last.Label) + 2
		}
		last.Text = Ellipsize(last.Text+" "+MoreMarker, room)
		kept[0] = last
		return kept, true
	}
	kept[budget-1] = Line{Kind: LineMore, Text: MoreMarker}
	return kept, true
}
