package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/datacard/internal/config"
)

// Matches checks if the key message matches a specific action binding.
func Matches(c config.InputConfig, msg tea.KeyMsg, binding string) bool {
	return msg.String() == binding
}

// IsUp checks if the key matches any "up" navigation key.
func IsUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavUp, msg.String())
}

// IsDown checks if the key matches any "down" navigation key.
func IsDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavDown, msg.String())
}

// IsLeft checks if the key matches any "left" navigation key.
func IsLeft(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavLeft, msg.String())
}

// IsRight checks if the key matches any "right" navigation key.
func IsRight(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.NavRight, msg.String())
}

// IsActivate checks if the key activates the card under the cursor.
func IsActivate(c config.InputConfig, msg tea.KeyMsg) bool {
	return slices.Contains(c.Activate, msg.String())
}

// IsNextGrid checks if the key moves focus to the next grid.
func IsNextGrid(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.NextGrid
}

// IsPrevGrid checks if the key moves focus to the previous grid.
func IsPrevGrid(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.PrevGrid
}

// IsCopy checks if the key copies the current selection.
func IsCopy(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Copy
}

// IsReload checks if the key reloads the page from disk.
func IsReload(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == c.Reload
}

// IsQuit checks if the key quits the viewer.
func IsQuit(c config.InputConfig, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// IsPageUp checks if the key scrolls the page up.
func IsPageUp(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == "pgup"
}

// IsPageDown checks if the key scrolls the page down.
func IsPageDown(c config.InputConfig, msg tea.KeyMsg) bool {
	return msg.String() == "pgdown"
}
