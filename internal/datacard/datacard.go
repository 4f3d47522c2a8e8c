// Package datacard renders lists of records as card grids and reports the
// card the user last activated.
//
// A host drives a Page through reruns: every user interaction recomputes the
// whole page, so Begin is called with the pending activation (if any), then
// DataCard once per grid in page order, then End. Selection survives reruns
// in the page's store, keyed by each grid's identity key.
package datacard

import (
	"errors"
	"fmt"

	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/grid"
	"github.com/lucky7xz/datacard/internal/selection"
	"go.uber.org/zap"
)

// ErrDuplicateKey is returned when two grids on one page share a key.
var ErrDuplicateKey = errors.New("duplicate grid key")

// Options mirrors the component's parameters.
type Options struct {
	TitleField string
	ImageField string
	FieldTypes card.FieldTypes
	CardWidth  int // pixels, default 280
	MaxHeight  int // pixels, default 400
	Clickable  bool
	Key        string // empty selects an implicit positional key
}

func (o Options) classify() card.ClassifyOptions {
	return card.ClassifyOptions{
		TitleField: o.TitleField,
		ImageField: o.ImageField,
		FieldTypes: o.FieldTypes,
	}
}

// Event is an activation of the card at Index in the grid with Key.
type Event struct {
	Key   string
	Index int
}

// Result is one rendered grid.
type Result struct {
	Grid      grid.Grid
	Key       string
	Clickable bool
	Selected  card.Record
	OK        bool // false when nothing is selected or the grid is not clickable
}

// Layout classifies records and arranges them without any selection.
func Layout(records []card.Record, opts Options, available int, m grid.Metrics) grid.Grid {
	specs := card.ClassifyAll(records, opts.classify())
	return grid.Build(specs, grid.Config{
		CardWidth: opts.CardWidth,
		MaxHeight: opts.MaxHeight,
		Key:       opts.Key,
	}, available, m)
}

// ImplicitKey is the key of a grid rendered without one, pos being its
// zero-based call position within the rerun.
func ImplicitKey(pos int) string {
	return fmt.Sprintf("datacard-%d", pos)
}

// Page is one hosting session.
type Page struct {
	store   *selection.Store
	metrics grid.Metrics
	width   int

	event    *Event
	position int
	seen     map[string]bool
}

// NewPage creates a page whose selection lives in store. A nil store gets a
// fresh one.
func NewPage(store *selection.Store, m grid.Metrics) *Page {
	if store == nil {
		store = selection.NewStore()
	}
	return &Page{store: store, metrics: m, seen: make(map[string]bool)}
}

// Store returns the page's selection store.
func (p *Page) Store() *selection.Store { return p.store }

// SetWidth sets the container width in pixels used for wrapping.
func (p *Page) SetWidth(px int) { p.width = px }

// Width returns the container width in pixels.
func (p *Page) Width() int { return p.width }

// Begin starts a rerun. ev is the activation that triggered it, or nil.
func (p *Page) Begin(ev *Event) {
	p.event = ev
	p.position = 0
	p.seen = make(map[string]bool)
}

// DataCard renders one grid during a rerun.
func (p *Page) DataCard(records []card.Record, opts Options) (Result, error) {
	key := opts.Key
	if key == "" {
		key = ImplicitKey(p.position)
	}
	p.position++
	if p.seen[key] {
		return Result{}, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	p.seen[key] = true

	opts.Key = key
	g := Layout(records, opts, p.width, p.metrics)
	ctl := selection.NewController(p.store, key, opts.Clickable)

	if ev := p.event; ev != nil && ev.Key == key {
		switch {
		case !opts.Clickable:
			zap.L().Debug("activation on static grid ignored", zap.String("key", key))
		case ev.Index < 0 || ev.Index >= len(records):
			zap.L().Debug("activation out of range",
				zap.String("key", key), zap.Int("index", ev.Index), zap.Int("cards", len(records)))
		default:
			ctl.Activate(ev.Index, records[ev.Index])
			zap.L().Info("card activated", zap.String("key", key), zap.Int("index", ev.Index))
		}
		p.event = nil
	}

	res := Result{Grid: g, Key: key, Clickable: opts.Clickable}
	if st := ctl.Current(); st.Selected {
		res.Selected = st.Record.Clone()
		res.OK = true
		if st.Index < len(records) && records[st.Index].Equal(st.Record) {
			res.Grid.Selected = st.Index
		}
	}
	return res, nil
}

// End finishes a rerun and clears the selection of grids that were not
// rendered in it.
func (p *Page) End() []string {
	dropped := p.store.Retain(p.seen)
	for _, k := range dropped {
		zap.L().Debug("selection cleared for removed grid", zap.String("key", k))
	}
	p.event = nil
	return dropped
}
