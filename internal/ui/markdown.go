package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// markdownCache keeps rendered markdown per wrap width. Rendering through
// glamour is far slower than a rerun, and section text rarely changes.
type markdownCache struct {
	width    int
	renderer *glamour.TermRenderer
	rendered map[string]string
}

func newMarkdownCache() *markdownCache {
	return &markdownCache{rendered: make(map[string]string)}
}

// RenderMarkdown renders md for a terminal of the given width.
func RenderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func (c *markdownCache) render(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	width = max(20, width)
	if c.renderer == nil || c.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			zap.L().Warn("markdown renderer unavailable", zap.Error(err))
			return md
		}
		c.renderer = r
		c.width = width
		c.rendered = make(map[string]string)
	}
	if out, ok := c.rendered[md]; ok {
		return out
	}
	out, err := c.renderer.Render(md)
	if err != nil {
		zap.L().Warn("markdown render failed", zap.Error(err))
		return md
	}
	out = strings.Trim(out, "\n")
	c.rendered[md] = out
	return out
}
