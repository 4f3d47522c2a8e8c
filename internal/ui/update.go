package ui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/datacard/internal/datacard"
	"github.com/lucky7xz/datacard/internal/page"
	"github.com/lucky7xz/datacard/internal/watch"
	"go.uber.org/zap"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.watcher != nil {
		cmds = append(cmds, waitForChangeCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// loadPageCmd reads the page off the UI goroutine.
func loadPageCmd(load func() (*page.Doc, error)) tea.Cmd {
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		doc, err := load()
		return pageLoadedMsg{doc: doc, err: err}
	}
}

// waitForChangeCmd blocks until a watched file changes. A closed watcher
// ends the wait without a message.
func waitForChangeCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		path, err := w.Next(context.Background())
		if err != nil {
			return nil
		}
		return fileChangedMsg{path: path}
	}
}

// copyToClipboardCmd copies text to clipboard using the best available method
func copyToClipboardCmd(s string) tea.Cmd {
	return func() tea.Msg {
		CopyToClipboard(s)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		layout := CalculateLayout(m.termWidth, m.termHeight)
		m.viewport.Width = layout.BodyWidth
		m.viewport.Height = layout.BodyHeight
		return m.rerun(nil), nil

	case pageLoadedMsg:
		before := m.watcher
		m = m.applyDoc(msg.doc, msg.err)
		if msg.err == nil {
			cmd := m.setStatus("Page reloaded", true)
			if m.watcher != nil && m.watcher != before {
				return m, tea.Batch(cmd, waitForChangeCmd(m.watcher))
			}
			return m, cmd
		}
		return m, nil

	case fileChangedMsg:
		zap.L().Info("page file changed, reloading", zap.String("path", msg.path))
		m.loading = true
		cmds := []tea.Cmd{loadPageCmd(m.load)}
		if m.watcher != nil {
			cmds = append(cmds, waitForChangeCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case navTimeoutMsg:
		if m.navigationTimer != nil {
			m.navigationTimer.Stop()
		}
		m.navigationTimer = nil
		return m, nil

	case statusClearMsg:
		if msg.id != m.statusClearTimerID {
			return m, nil
		}
		m.statusClearTimerID = 0
		m.statusMessage = ""
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		zap.L().Debug("key pressed", zap.String("key", key))

		// Global Emergency Exit: Ctrl+C should always quit
		if key == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case infoMode:
			return m.updateInfoMode(msg)
		default:
			return m.updateGridMode(msg)
		}
	}

	return m, nil
}

func (m Model) updateInfoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case IsCopy(m.Config.Keys, msg):
		if m.activeDetail != nil {
			cmd = copyToClipboardCmd(m.activeDetail.Value)
		}
	case IsReload(m.Config.Keys, msg):
		m.loading = true
		cmd = loadPageCmd(m.load)
	}
	m.mode = m.previousMode
	m.activeDetail = nil
	return m, cmd
}

// activate selects the card under the cursor and reruns the page.
func (m Model) activate() (Model, tea.Cmd) {
	r := m.focusedResult()
	if r == nil || r.Grid.Len() == 0 {
		return m, nil
	}
	if !r.Clickable {
		return m, m.setStatus(fmt.Sprintf("%s is not clickable", r.Key), false)
	}
	m = m.rerun(&datacard.Event{Key: r.Key, Index: m.cursor})
	return m, m.setStatus(fmt.Sprintf("Selected card %d in %s", m.cursor+1, r.Key), true)
}

// copySelection puts the focused grid's selection on the clipboard as JSON.
func (m Model) copySelection() (Model, tea.Cmd) {
	r := m.focusedResult()
	if r == nil || !r.OK {
		return m, m.setStatus("Nothing selected", false)
	}
	b, err := json.MarshalIndent(r.Selected, "", "  ")
	if err != nil {
		zap.L().Warn("could not encode selection", zap.Error(err))
		return m, m.setStatus("Copy failed", false)
	}
	return m, tea.Batch(copyToClipboardCmd(string(b)), m.setStatus("Copied selection", true))
}

// refreshBody redraws the page into the viewport and keeps the cursor in view.
func (m *Model) refreshBody() {
	layout := CalculateLayout(m.termWidth, m.termHeight)
	width := layout.BodyWidth - containerStyle.GetHorizontalPadding()

	var parts []string
	y := 0
	add := func(s string) {
		parts = append(parts, s)
		y += lipgloss.Height(s)
	}
	m.gridTops = make(map[int]int)
	for i, b := range m.blocks {
		if b.Heading != "" {
			add(headingStyle.Render(b.Heading))
		}
		if md := m.markdown.render(b.Markdown, width); md != "" {
			add(md)
		}
		if b.Grid == nil {
			continue
		}
		cursor := -1
		if i == m.focus {
			cursor = m.cursor
		}
		s := RenderGrid(b.Grid.Grid, cursor, i == m.focus)
		if s == "" {
			add(helpStyle.Render("(no records)"))
			continue
		}
		m.gridTops[i] = y
		add(s)
	}
	m.viewport.SetContent(containerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	top, ok := m.gridTops[m.focus]
	if !ok || m.viewport.Height <= 0 {
		return
	}
	g := m.focusedGrid()
	row, _ := g.Position(m.cursor)
	if row < 0 {
		return
	}
	start := top + RowOffsets(g)[row]
	end := start + rowHeight(g, row)
	switch {
	case start < m.viewport.YOffset:
		m.viewport.SetYOffset(start)
	case end > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(min(start, end-m.viewport.Height))
	}
}
