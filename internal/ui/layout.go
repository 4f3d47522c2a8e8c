package ui

// Layout constants define the geometry of the TUI elements.
const (
	LayoutHeaderHeight = 2 // title + rule
	LayoutFooterHeight = 2 // help + status
	LayoutSideMargin   = 2 // left + right app margin
	LayoutVertPadding  = 0

	// below this the page cannot show a single line of cards
	MinWidth  = 24
	MinHeight = 6
)

// Layout controls the visibility of UI elements based on terminal size.
type Layout struct {
	ShowHeader bool
	ShowFooter bool
	BodyWidth  int
	BodyHeight int
}

// CalculateLayout determines which UI elements should be visible and how
// much room the scrolling page body gets. The body always wins: the header
// goes first, then the footer.
func CalculateLayout(termW, termH int) Layout {
	l := Layout{
		ShowHeader: true,
		ShowFooter: true,
		BodyWidth:  max(1, termW-LayoutSideMargin),
	}

	body := termH - LayoutHeaderHeight - LayoutFooterHeight - LayoutVertPadding
	if body < MinHeight {
		l.ShowHeader = false
		body += LayoutHeaderHeight
	}
	if body < MinHeight {
		l.ShowFooter = false
		body += LayoutFooterHeight
	}
	l.BodyHeight = max(1, body)
	return l
}

// IsBelowMinimum reports whether the terminal is too small to draw the page.
func IsBelowMinimum(termW, termH int) bool {
	return termW < MinWidth || termH < MinHeight
}
