package card

import "unicode/utf16"

// badgePalette holds muted colors that stay readable under white text.
var badgePalette = []string{
	"#6b7280", "#6366f1", "#059669", "#dc2626", "#7c3aed", "#0891b2",
	"#65a30d", "#ea580c", "#be185d", "#4338ca", "#0d9488", "#ca8a04",
	"#7f1d1d", "#1e3a8a", "#064e3b", "#78350f", "#581c87", "#164e63",
}

// BadgeColor picks a stable background color for a badge value, so equal
// values get equal colors across cards and grids.
func BadgeColor(value string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(value)) {
		h = (h << 5) - h + int32(u)
	}
	idx := int64(h)
	if idx < 0 {
		idx = -idx
	}
	return badgePalette[idx%int64(len(badgePalette))]
}
