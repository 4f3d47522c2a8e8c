package page

import (
	"github.com/lucky7xz/datacard/internal/datacard"
)

// Block is one rendered section.
type Block struct {
	Heading  string
	Markdown string
	Grid     *datacard.Result
}

// Render runs the page once against p. ev is the activation that triggered
// the rerun, or nil. On a grid error the blocks rendered so far are
// returned with the error and no selection is cleared.
func (d *Doc) Render(p *datacard.Page, ev *datacard.Event) ([]Block, error) {
	p.Begin(ev)

	blocks := make([]Block, 0, len(d.Sections))
	for _, sec := range d.Sections {
		b := Block{Heading: sec.Heading, Markdown: sec.Markdown}
		if sec.Grid != nil {
			res, err := p.DataCard(sec.Records, sec.Grid.Options())
			if err != nil {
				return blocks, err
			}
			b.Grid = &res
		}
		blocks = append(blocks, b)
	}
	p.End()
	return blocks, nil
}

// Find returns the rendered grid with key.
func Find(blocks []Block, key string) (*datacard.Result, bool) {
	for _, b := range blocks {
		if b.Grid != nil && b.Grid.Key == key {
			return b.Grid, true
		}
	}
	return nil, false
}
