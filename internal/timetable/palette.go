package timetable

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

var palette = mustPalette(
	"#6366f1", "#8b5cf6", "#10b981", "#f59e0b", "#ef4444",
	"#06b6d4", "#84cc16", "#f97316", "#ec4899", "#8b5a2b",
)

func mustPalette(hexes ...string) []colorful.Color {
	res := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(err)
		}
		res = append(res, c)
	}
	return res
}

// PaletteColor returns the i-th palette color as a hex string, cycling.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)].Hex()
}

// ValidColor reports whether s is a "#rrggbb" color.
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil && len(s) == 7
}
