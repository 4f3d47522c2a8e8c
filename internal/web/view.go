package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/config"
	"github.com/lucky7xz/datacard/internal/grid"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).ParseFS(templateFS, "templates/page.html"))

var markdown = goldmark.New()

type pageView struct {
	Title  string
	Error  string
	Colors config.UIColors
	Theme  config.ThemeConfig
	Blocks []blockView
}

type blockView struct {
	Heading  string
	Markdown template.HTML
	Grid     *gridView
}

type gridView struct {
	Key       string
	CardWidth int
	MaxHeight int
	ImageBand int
	Clickable bool
	Selection string
	Cards     []cardView
}

type cardView struct {
	Index       int
	Image       string
	ImageHeight int
	MaxHeight   int
	Selected    bool
	Truncated   bool
	Lines       []lineView
}

type lineView struct {
	Kind   string // title, text, badges, more
	Label  string
	Text   string
	Badges []badgeView
}

type badgeView struct {
	Text  string
	Color string
}

func newPageView(doc *page.Doc, blocks []page.Block, theme string) pageView {
	t := config.GetTheme(theme)
	v := pageView{
		Title:  "datacard",
		Theme:  t,
		Colors: config.MapThemeToUI(t),
	}
	if doc != nil && strings.TrimSpace(doc.Title) != "" {
		v.Title = doc.Title
	}
	for _, b := range blocks {
		bv := blockView{Heading: b.Heading, Markdown: renderMarkdown(b.Markdown)}
		if b.Grid != nil {
			gv := &gridView{
				Key:       b.Grid.Key,
				CardWidth: b.Grid.Grid.CardWidth,
				MaxHeight: b.Grid.Grid.MaxHeight,
				ImageBand: grid.ImageBand,
				Clickable: b.Grid.Clickable,
			}
			if b.Grid.OK {
				gv.Selection = selectionSummary(b.Grid.Selected)
			}
			for _, c := range b.Grid.Grid.Cards {
				cv := newCardView(c, c.Index == b.Grid.Grid.Selected)
				cv.MaxHeight = gv.MaxHeight
				cv.ImageHeight = gv.ImageBand
				gv.Cards = append(gv.Cards, cv)
			}
			bv.Grid = gv
		}
		v.Blocks = append(v.Blocks, bv)
	}
	return v
}

func newCardView(c grid.Card, selected bool) cardView {
	cv := cardView{
		Index:     c.Index,
		Image:     c.Spec.Image,
		Selected:  selected,
		Truncated: c.Truncated,
	}
	for _, l := range c.Lines {
		lv := lineView{Label: l.Label, Text: l.Text}
		switch l.Kind {
		case grid.LineTitle:
			lv.Kind = "title"
		case grid.LineBadges:
			lv.Kind = "badges"
			for _, b := range l.Badges {
				lv.Badges = append(lv.Badges, badgeView{Text: b, Color: card.BadgeColor(b)})
			}
		case grid.LineMore:
			lv.Kind = "more"
		default:
			lv.Kind = "text"
		}
		cv.Lines = append(cv.Lines, lv)
	}
	return cv
}

// selectionSummary is the one-line description shown under a clickable grid.
func selectionSummary(rec card.Record) string {
	fields := rec.Fields()
	parts := make([]string, 0, min(3, len(fields)))
	for _, f := range fields {
		if len(parts) == 3 {
			parts = append(parts, "…")
			break
		}
		if s, ok := card.DisplayValue(f.Value); ok {
			parts = append(parts, f.Name+": "+s)
		}
	}
	return strings.Join(parts, ", ")
}

func renderMarkdown(md string) template.HTML {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		zap.L().Warn("markdown convert failed", zap.Error(err))
		return template.HTML(template.HTMLEscapeString(md))
	}
	// goldmark leaves raw HTML out unless WithUnsafe is set
	return template.HTML(buf.String())
}
