package grid

// Geometry of the card grid, in pixels.
const (
	DefaultCardWidth = 280
	DefaultMaxHeight = 400

	ContainerPadding = 16
	Gap              = 16
	CardPadding      = 20
	ImageBand        = 140

	// badgePad is the horizontal cell cost of a badge pill around its text.
	badgePad = 2
)

// Config is the immutable configuration of one grid.
type Config struct {
	CardWidth int
	MaxHeight int
	Key       string
}

// WithDefaults fills non-positive sizes with the defaults.
func (c Config) WithDefaults() Config {
	if c.CardWidth <= 0 {
		c.CardWidth = DefaultCardWidth
	}
	if c.MaxHeight <= 0 {
		c.MaxHeight = DefaultMaxHeight
	}
	return c
}

// Metrics converts pixel geometry into the host's text cells.
type Metrics struct {
	CellWidth  int // pixels per column
	LineHeight int // pixels per line
}

var (
	TerminalMetrics = Metrics{CellWidth: 8, LineHeight: 16}
	HTMLMetrics     = Metrics{CellWidth: 8, LineHeight: 20}
)

func (m Metrics) normalized() Metrics {
	if m.CellWidth <= 0 {
		m.CellWidth = TerminalMetrics.CellWidth
	}
	if m.LineHeight <= 0 {
		m.LineHeight = TerminalMetrics.LineHeight
	}
	return m
}

// Columns returns how many fixed-width cards fit side by side in the
// available container width. Zero or negative width means unbounded and
// yields 0, which callers treat as "everything on one row".
func Columns(available, cardWidth int) int {
	if available <= 0 {
		return 0
	}
	usable := available - 2*ContainerPadding
	cols := (usable + Gap) / (cardWidth + Gap)
	if cols < 1 {
		cols = 1
	}
	return cols
}
