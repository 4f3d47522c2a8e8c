package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/datacard/internal/config"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

var (
	appStyle = lipgloss.NewStyle().
			Margin(0, 1)

	// containerStyle pads the page body like the grid container's 16px.
	containerStyle = lipgloss.NewStyle().
			Padding(0, 2)

	headerStyle         lipgloss.Style
	headingStyle        lipgloss.Style
	helpStyle           lipgloss.Style
	cardStyle           lipgloss.Style
	cursorCardStyle     lipgloss.Style
	selectedCardStyle   lipgloss.Style
	cardTitleStyle      lipgloss.Style
	cardLabelStyle      lipgloss.Style
	cardTextStyle       lipgloss.Style
	cardMoreStyle       lipgloss.Style
	badgeStyle          lipgloss.Style
	imageStyle          lipgloss.Style
	statusPositiveStyle lipgloss.Style
	statusNegativeStyle lipgloss.Style
	titleStyle          lipgloss.Style
	itemStyle           lipgloss.Style
	errorTitleStyle     lipgloss.Style
	errorTextStyle      lipgloss.Style
	themeNameStyle      lipgloss.Style
	popupStyle          lipgloss.Style
)

func init() {
	ApplyTheme(config.DefaultConfig().Theme)
}

// ApplyTheme sets every package style from the named theme. It also drives
// the one-shot renderer, which has no model.
func ApplyTheme(name string) {
	theme := config.GetTheme(name)
	ui := config.MapThemeToUI(theme)

	headerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HeaderFG)).
		Bold(true)

	headingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HeadingFG)).
		Bold(true).
		MarginTop(1)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HelpFG))

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ui.CardBorder)).
		Padding(0, 1)

	cursorCardStyle = cardStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ui.CardCursor))

	selectedCardStyle = cardStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ui.CardSelBorder))

	cardTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.CardTitleFG)).
		Bold(true)

	cardLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.CardLabelFG)).
		Bold(true)

	cardTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.CardTextFG))

	cardMoreStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.CardMoreFG))

	badgeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)

	imageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ImageFG)).
		Background(lipgloss.Color(ui.ImageBG))

	statusPositiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.StatusPositive)).
		PaddingLeft(1)

	statusNegativeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.StatusNegative)).
		PaddingLeft(1)

	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HeaderFG)).
		Bold(true).
		Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	errorTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.StatusNegative)).
		Bold(true)

	errorTextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.Warning))

	themeNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.HeadingFG)).
		Bold(true)

	popupStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ui.CardSelBorder)).
		Background(lipgloss.Color(theme.Background)).
		Foreground(lipgloss.Color(theme.Foreground)).
		Padding(1, 2).
		Margin(1)
}
