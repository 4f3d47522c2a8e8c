package ui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/datacard/internal/card"
	"github.com/lucky7xz/datacard/internal/config"
	"github.com/lucky7xz/datacard/internal/datacard"
	"github.com/lucky7xz/datacard/internal/grid"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/watch"
	"go.uber.org/zap"
)

const statusDuration = 3 * time.Second

// Options configures the page viewer.
type Options struct {
	Config config.Config
	// Load reads the page. It runs on start, on reload and whenever a
	// watched file changes.
	Load func() (*page.Doc, error)
	// Watch enables reloading when the page or its data files change.
	Watch bool
}

type Model struct {
	Config   config.Config
	Quitting bool

	load    func() (*page.Doc, error)
	watch   bool
	watcher *watch.Watcher

	doc      *page.Doc
	page     *datacard.Page
	blocks   []page.Block
	gridTops map[int]int // block index -> first body line of its grid

	focus  int // block index of the focused grid, -1 when none
	cursor int // card index inside the focused grid

	mode         navMode
	previousMode navMode
	activeDetail *DetailState

	viewport viewport.Model
	spinner  spinner.Model
	loading  bool
	markdown *markdownCache

	termWidth  int
	termHeight int

	statusMessage      string
	statusPositive     bool
	nextTimerID        int
	statusClearTimerID int

	navigationTimer *time.Timer
}

// NewModel loads the page once and prepares the viewer. A page that fails
// to load opens the error popup instead of failing.
func NewModel(opts Options) Model {
	cfg := opts.Config
	cfg.ApplyDefaults()
	ApplyTheme(cfg.Theme)

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = themeNameStyle

	m := Model{
		Config:   cfg,
		load:     opts.Load,
		watch:    opts.Watch,
		page:     datacard.NewPage(nil, grid.TerminalMetrics),
		focus:    -1,
		mode:     gridMode,
		viewport: viewport.New(0, 0),
		spinner:  s,
		markdown: newMarkdownCache(),
	}
	if m.load != nil {
		doc, err := m.load()
		m = m.applyDoc(doc, err)
	}
	return m
}

// Close releases the file watcher.
func (m Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// Selections returns the selected record of every clickable grid that has one.
func (m Model) Selections() map[string]card.Record {
	out := make(map[string]card.Record)
	for _, b := range m.blocks {
		if b.Grid != nil && b.Grid.OK {
			out[b.Grid.Key] = b.Grid.Selected
		}
	}
	return out
}

// applyDoc installs a freshly loaded page and reruns it. On error the
// previous page stays on screen behind the error popup.
func (m Model) applyDoc(doc *page.Doc, err error) Model {
	m.loading = false
	if err != nil {
		zap.L().Warn("page failed to load", zap.Error(err))
		return m.showError("Page failed to load", err)
	}
	m.doc = doc
	m.resetWatcher()
	if m.mode == infoMode && m.activeDetail != nil && m.activeDetail.KeyLabel == "Error" {
		m.mode = gridMode
		m.activeDetail = nil
	}
	return m.rerun(nil)
}

// resetWatcher follows the page's current file set.
func (m *Model) resetWatcher() {
	if !m.watch || m.doc == nil {
		return
	}
	files := m.doc.Files()
	if m.watcher != nil && slices.Equal(m.watcher.Files(), sortedAbs(files)) {
		return
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	if len(files) == 0 {
		return
	}
	w, err := watch.New(files)
	if err != nil {
		zap.L().Warn("could not watch page files", zap.Error(err))
		return
	}
	m.watcher = w
}

// rerun renders the whole page again, applying ev if set.
func (m Model) rerun(ev *datacard.Event) Model {
	if m.doc == nil {
		return m
	}
	layout := CalculateLayout(m.termWidth, m.termHeight)
	m.page.SetWidth(m.bodyWidthPx(layout))

	blocks, err := m.doc.Render(m.page, ev)
	m.blocks = blocks
	if err != nil {
		m = m.showError("Page failed to render", err)
	}
	m.clampFocus()
	m.refreshBody()
	return m
}

// bodyWidthPx is the grid container width in pixels. Before the first
// window size message the width is unknown and the grid is unconstrained.
func (m Model) bodyWidthPx(l Layout) int {
	if m.termWidth == 0 {
		return 0
	}
	return l.BodyWidth * grid.TerminalMetrics.CellWidth
}

// focusTargets lists the blocks the cursor can visit: clickable grids with
// cards, or every grid with cards when none is clickable.
func (m Model) focusTargets() []int {
	var clickable, all []int
	for i, b := range m.blocks {
		if b.Grid == nil || b.Grid.Grid.Len() == 0 {
			continue
		}
		all = append(all, i)
		if b.Grid.Clickable {
			clickable = append(clickable, i)
		}
	}
	if len(clickable) > 0 {
		return clickable
	}
	return all
}

func (m *Model) clampFocus() {
	targets := m.focusTargets()
	if len(targets) == 0 {
		m.focus, m.cursor = -1, 0
		return
	}
	if !slices.Contains(targets, m.focus) {
		m.focus = targets[0]
		m.cursor = 0
	}
	if n := m.focusedGrid().Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// focusedResult returns the rendered grid under focus.
func (m Model) focusedResult() *datacard.Result {
	if m.focus < 0 || m.focus >= len(m.blocks) {
		return nil
	}
	return m.blocks[m.focus].Grid
}

func (m Model) focusedGrid() grid.Grid {
	if r := m.focusedResult(); r != nil {
		return r.Grid
	}
	return grid.Grid{Selected: -1}
}

func (m Model) showError(title string, err error) Model {
	if m.mode != infoMode {
		m.previousMode = m.mode
	}
	meta := []DetailMeta{}
	if m.doc != nil && m.doc.Source() != "" {
		meta = append(meta, DetailMeta{Label: "Page", Value: m.doc.Source()})
	}
	m.activeDetail = &DetailState{
		Title:       title,
		KeyLabel:    "Error",
		Value:       strings.TrimSpace(err.Error()),
		Description: "Fix the file and save it, or press r to reload. The last good page stays loaded.",
		Meta:        meta,
	}
	m.mode = infoMode
	return m
}

func (m *Model) scheduleStatusClearTimer() tea.Cmd {
	m.nextTimerID++
	id := m.nextTimerID
	m.statusClearTimerID = id
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

func (m *Model) setStatus(message string, positive bool) tea.Cmd {
	m.statusMessage = message
	m.statusPositive = positive
	if strings.TrimSpace(message) == "" {
		m.statusClearTimerID = 0
		return nil
	}
	return m.scheduleStatusClearTimer()
}

// selectionLabel describes the focused grid's selection for the footer.
func (m Model) selectionLabel() string {
	r := m.focusedResult()
	if r == nil {
		return "no grid"
	}
	if !r.Clickable {
		return fmt.Sprintf("%s (static)", r.Key)
	}
	if !r.OK {
		return fmt.Sprintf("%s: nothing selected", r.Key)
	}
	if r.Grid.Selected < 0 {
		return fmt.Sprintf("%s: selected record no longer listed", r.Key)
	}
	return fmt.Sprintf("%s: card %d", r.Key, r.Grid.Selected+1)
}

func sortedAbs(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			out = append(out, abs)
		}
	}
	slices.Sort(out)
	return out
}
