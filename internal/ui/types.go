package ui

import (
	"github.com/lucky7xz/datacard/internal/page"
)

// The viewer is built on Bubble Tea, which follows the Elm Architecture
// (Model-View-Update). These shared types describe the pieces that move
// through that loop.

type navMode int

const (
	gridMode navMode = iota
	infoMode
)

type (
	// pageLoadedMsg carries the result of (re)reading the page from disk.
	pageLoadedMsg struct {
		doc *page.Doc
		err error
	}
	// fileChangedMsg signals that a watched page or data file changed.
	fileChangedMsg struct {
		path string
	}
	statusClearMsg struct {
		id int
	}
	navTimeoutMsg struct{}
)

// DetailState defines the content for the info/error popup.
type DetailState struct {
	Title       string
	KeyLabel    string // Label for the main value (e.g. "Record", "Error")
	Value       string // The main content
	Description string
	Meta        []DetailMeta
}

// DetailMeta represents a single key-value pair in the detail view metadata section.
type DetailMeta struct {
	Label string
	Value string
}
