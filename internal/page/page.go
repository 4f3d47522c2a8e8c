// Package page loads page documents: TOML files that interleave markdown
// sections with card grids backed by JSON or YAML record files.
package page

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/datacard"
	"go.uber.org/zap"
)

// ErrNoData is returned when a grid section does not name a data file.
var ErrNoData = errors.New("grid has no data file")

// GridSpec is the [sections.grid] table of a page file.
type GridSpec struct {
	Data       string            `toml:"data"`
	Key        string            `toml:"key"`
	TitleField string            `toml:"title_field"`
	ImageField string            `toml:"image_field"`
	FieldTypes map[string]string `toml:"field_types"`
	CardWidth  int               `toml:"card_width"`
	MaxHeight  int               `toml:"max_height"`
	Clickable  bool              `toml:"clickable"`
}

// Options converts the table into component options.
func (g GridSpec) Options() datacard.Options {
	return datacard.Options{
		TitleField: g.TitleField,
		ImageField: g.ImageField,
		FieldTypes: card.FieldTypes(g.FieldTypes),
		CardWidth:  g.CardWidth,
		MaxHeight:  g.MaxHeight,
		Clickable:  g.Clickable,
		Key:        g.Key,
	}
}

// Section is a heading, some markdown and an optional grid.
type Section struct {
	Heading  string    `toml:"heading"`
	Markdown string    `toml:"markdown"`
	Grid     *GridSpec `toml:"grid"`

	Records []card.Record `toml:"-"`
}

// Doc is a loaded page.
type Doc struct {
	Title    string    `toml:"title"`
	Sections []Section `toml:"sections"`

	source string
	files  []string
}

// Source returns the page file the document was loaded from.
func (d *Doc) Source() string { return d.source }

// Files lists the files on disk the page depends on: the page itself and
// every data file. Pages loaded from an fs.FS have none.
func (d *Doc) Files() []string {
	out := make([]string, len(d.files))
	copy(out, d.files)
	return out
}

// Grids returns the sections that carry a grid.
func (d *Doc) Grids() []*Section {
	var out []*Section
	for i := range d.Sections {
		if d.Sections[i].Grid != nil {
			out = append(out, &d.Sections[i])
		}
	}
	return out
}

// readFunc resolves a data file named in the page and returns its contents
// together with the name it was read from.
type readFunc func(name string) (string, []byte, error)

// Load reads a page file and every data file it references. Data paths are
// resolved relative to the page file.
func Load(pagePath string) (*Doc, error) {
	abs, err := filepath.Abs(pagePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	dir := filepath.Dir(abs)
	doc, err := decode(data, abs, func(name string) (string, []byte, error) {
		full := name
		if !filepath.IsAbs(full) {
			full = filepath.Join(dir, filepath.FromSlash(name))
		}
		b, err := os.ReadFile(full)
		return full, b, err
	})
	if err != nil {
		return nil, err
	}
	doc.files = append(doc.files, abs)
	return doc, nil
}

// LoadFS reads a page and its data files from fsys.
func LoadFS(fsys fs.FS, name string) (*Doc, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := decode(data, name, func(rel string) (string, []byte, error) {
		full := path.Join(path.Dir(name), rel)
		b, err := fs.ReadFile(fsys, full)
		return full, b, err
	})
	if err != nil {
		return nil, err
	}
	// embedded files never change
	doc.files = nil
	return doc, nil
}

func decode(data []byte, source string, read readFunc) (*Doc, error) {
	var doc Doc
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode page %s: %w", source, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		zap.L().Warn("unknown page keys ignored", zap.String("page", source), zap.Strings("keys", keys))
	}
	doc.source = source

	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.Grid == nil {
			continue
		}
		name := strings.TrimSpace(sec.Grid.Data)
		if name == "" {
			return nil, fmt.Errorf("section %d: %w", i, ErrNoData)
		}
		format, err := card.FormatFromPath(name)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		full, b, err := read(name)
		if err != nil {
			return nil, fmt.Errorf("section %d: read %s: %w", i, name, err)
		}
		recs, err := card.ParseRecords(b, format)
		if err != nil {
			return nil, fmt.Errorf("section %d: %s: %w", i, name, err)
		}
		sec.Records = recs
		doc.files = append(doc.files, full)
	}
	return &doc, nil
}
