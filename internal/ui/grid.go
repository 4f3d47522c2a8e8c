package ui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/datacard/internal/core"
)

func (m Model) updateGridMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle number-based navigation (1-9)
	if num, err := strconv.Atoi(key); err == nil && num >= 1 && num <= 9 {
		return m.jumpTo(num - 1)
	}

	// If a navigation sequence was in progress, any non-numeric key cancels it.
	if m.navigationTimer != nil {
		m.navigationTimer.Stop()
		m.navigationTimer = nil
	}

	switch {
	case IsQuit(m.Config.Keys, msg):
		m.Quitting = true
		return m, tea.Quit
	case IsUp(m.Config.Keys, msg):
		m.moveCursor(-1, 0)
	case IsDown(m.Config.Keys, msg):
		m.moveCursor(1, 0)
	case IsLeft(m.Config.Keys, msg):
		m.moveCursor(0, -1)
	case IsRight(m.Config.Keys, msg):
		m.moveCursor(0, 1)
	case IsNextGrid(m.Config.Keys, msg):
		m.cycleFocus(1)
	case IsPrevGrid(m.Config.Keys, msg):
		m.cycleFocus(-1)
	case IsActivate(m.Config.Keys, msg):
		return m.activate()
	case IsCopy(m.Config.Keys, msg):
		return m.copySelection()
	case IsReload(m.Config.Keys, msg):
		m.loading = true
		return m, loadPageCmd(m.load)
	case IsPageUp(m.Config.Keys, msg):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
		return m, nil
	case IsPageDown(m.Config.Keys, msg):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
		return m, nil
	default:
		return m, nil
	}
	m.refreshBody()
	return m, nil
}

// jumpTo handles digit navigation: the first digit picks a column of the
// focused grid, a second digit within half a second picks the row.
func (m Model) jumpTo(targetIndex int) (tea.Model, tea.Cmd) {
	g := m.focusedGrid()
	if g.Len() == 0 {
		return m, nil
	}

	if m.navigationTimer == nil { // This is the first number press (column selection)
		targetCol := min(targetIndex, g.LastCol())
		if targetCol < 0 {
			return m, nil
		}
		idx, ok := g.At(0, targetCol)
		if !ok {
			return m, nil
		}
		m.cursor = idx
		m.refreshBody()

		timer := time.NewTimer(500 * time.Millisecond)
		m.navigationTimer = timer
		return m, func() tea.Msg {
			<-timer.C
			return navTimeoutMsg{}
		}
	}

	// This is the second number press (row selection)
	m.navigationTimer.Stop()
	m.navigationTimer = nil

	_, col := g.Position(m.cursor)
	targetRow := min(targetIndex, g.LastRowInCol(col))
	if idx, ok := g.At(targetRow, col); ok {
		m.cursor = idx
	}
	m.refreshBody()
	return m, nil
}

// moveCursor steps to the nearest card in a direction. Moving up or down
// past the edge of a grid continues into the previous or next grid.
func (m *Model) moveCursor(rowDir, colDir int) {
	g := m.focusedGrid()
	if g.Len() == 0 {
		return
	}
	next := g.Neighbor(m.cursor, rowDir, colDir)
	if next != m.cursor || rowDir == 0 {
		m.cursor = next
		return
	}

	targets := m.focusTargets()
	target := core.NextFocus(m.focus, rowDir, targets)
	if target < 0 || target == m.focus {
		return
	}
	if (rowDir > 0 && target < m.focus) || (rowDir < 0 && target > m.focus) {
		// no wrapping at the top and bottom of the page
		return
	}
	_, col := g.Position(m.cursor)
	m.focus = target
	ng := m.focusedGrid()
	row := 0
	if rowDir < 0 {
		row = ng.LastRowInCol(min(col, ng.LastCol()))
	}
	if idx, ok := ng.At(row, min(col, len(ng.Rows[row])-1)); ok {
		m.cursor = idx
	} else {
		m.cursor = 0
	}
}

// cycleFocus moves the cursor to the next or previous focusable grid.
func (m *Model) cycleFocus(direction int) {
	target := core.NextFocus(m.focus, direction, m.focusTargets())
	if target < 0 || target == m.focus {
		return
	}
	m.focus = target
	m.cursor = 0
}
