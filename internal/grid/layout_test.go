package grid

import (
	"fmt"
	"testing"

	"github.com/lucky7xz/datacard/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specWithFields(title string, n int) card.CardSpec {
	spec := card.CardSpec{Title: title}
	for i := 0; i < n; i++ {
		spec.Fields = append(spec.Fields, card.CardField{
			Name:  fmt.Sprintf("f%d", i),
			Value: "v",
			Kind:  card.KindText,
		})
	}
	return spec
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name      string
		available int
		cardWidth int
		expected  int
	}{
		{"Unbounded", 0, 280, 0},
		{"Narrow container", 100, 280, 1},
		{"Exactly one", 312, 280, 1},
		{"Three fit", 1000, 280, 3},
		{"Small cards", 1000, 200, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Columns(tt.available, tt.cardWidth); got != tt.expected {
				t.Errorf("Columns() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	g := Build(nil, Config{}, 1000, TerminalMetrics)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Rows)
	assert.Equal(t, -1, g.Selected)
	assert.Equal(t, DefaultCardWidth, g.CardWidth)
	assert.Equal(t, DefaultMaxHeight, g.MaxHeight)
}

func TestBuild_CountAndOrder(t *testing.T) {
	var specs []card.CardSpec
	for i := 0; i < 7; i++ {
		specs = append(specs, specWithFields(fmt.Sprintf("card-%d", i), 1))
	}
	g := Build(specs, Config{CardWidth: 280}, 1000, TerminalMetrics)

	require.Equal(t, 7, g.Len())
	assert.Equal(t, 3, g.Columns)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}, {6}}, g.Rows)
	for i, c := range g.Cards {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, fmt.Sprintf("card-%d", i), c.Spec.Title)
	}
}

func TestBuild_UnboundedWidthIsOneRow(t *testing.T) {
	specs := []card.CardSpec{specWithFields("a", 1), specWithFields("b", 1)}
	g := Build(specs, Config{}, 0, TerminalMetrics)
	assert.Equal(t, [][]int{{0, 1}}, g.Rows)
}

func TestBuild_UniformRowHeights(t *testing.T) {
	specs := []card.CardSpec{
		specWithFields("short", 1),
		specWithFields("tall", 3),
		specWithFields("next row", 0),
	}
	g := Build(specs, Config{CardWidth: 280}, 640, TerminalMetrics)

	require.Equal(t, [][]int{{0, 1}, {2}}, g.Rows)
	assert.Equal(t, 4, g.Cards[0].Height)
	assert.Equal(t, 4, g.Cards[1].Height)
	assert.Equal(t, 1, g.Cards[2].Height)
}

func TestBuild_TruncatesToMaxHeight(t *testing.T) {
	specs := []card.CardSpec{specWithFields("overflowing", 5), specWithFields("fits", 1)}
	g := Build(specs, Config{CardWidth: 280, MaxHeight: 100}, 1000, TerminalMetrics)

	require.Equal(t, 3, g.Budget)
	over := g.Cards[0]
	assert.True(t, over.Truncated)
	require.Len(t, over.Lines, 3)
	assert.Equal(t, LineTitle, over.Lines[0].Kind)
	assert.Equal(t, LineMore, over.Lines[2].Kind)
	assert.Equal(t, MoreMarker, over.Lines[2].Text)

	assert.False(t, g.Cards[1].Truncated)
	assert.Equal(t, 3, g.Cards[1].Height)
}

func TestBuild_ImageReservesBand(t *testing.T) {
	withImage := specWithFields("pic", 30)
	withImage.Image = "https://example.com/x.png"
	g := Build([]card.CardSpec{withImage}, Config{CardWidth: 280, MaxHeight: 400}, 0, TerminalMetrics)

	assert.Equal(t, 8, g.ImageLines)
	c := g.Cards[0]
	assert.True(t, c.Truncated)
	assert.Len(t, c.Lines, 13)
	assert.Equal(t, 13, c.Height)
}

func TestBuild_FieldLines(t *testing.T) {
	spec := card.CardSpec{
		Title: "Alice Johnson",
		Fields: []card.CardField{
			{Name: "role", Value: "Product Manager", Kind: card.KindText},
			{Name: "skills", Value: "Strategy,Leadership,Analytics", Kind: card.KindBadge},
		},
	}
	g := Build([]card.CardSpec{spec}, Config{CardWidth: 280}, 0, TerminalMetrics)
	require.Equal(t, 30, g.InnerWidth)

	lines := g.Cards[0].Lines
	require.Len(t, lines, 4)
	assert.Equal(t, Line{Kind: LineTitle, Text: "Alice Johnson"}, lines[0])
	assert.Equal(t, Line{Kind: LineText, Label: "role", Text: "Product Manager"}, lines[1])
	assert.Equal(t, Line{Kind: LineBadges, Label: "skills", Badges: []string{"Strategy"}}, lines[2])
	assert.Equal(t, Line{Kind: LineBadges, Badges: []string{"Leadership", "Analytics"}}, lines[3])
}

func TestBuild_Idempotent(t *testing.T) {
	specs := []card.CardSpec{specWithFields("a", 2), specWithFields("b", 4)}
	first := Build(specs, Config{CardWidth: 200, MaxHeight: 250}, 900, TerminalMetrics)
	second := Build(specs, Config{CardWidth: 200, MaxHeight: 250}, 900, TerminalMetrics)
	assert.Equal(t, first, second)
}
