package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

// maxCells caps how many pieces a bar draws.
const maxCells = 24

type glyphs struct {
	full, empty string
	color       color.Color
}

var visualGlyphs = map[catalog.VisualType]glyphs{
	catalog.VisualCircle:    {"●", "○", theme.VisualCircle},
	catalog.VisualRectangle: {"■", "□", theme.VisualRectangle},
	catalog.VisualLiquid:    {"▓", "░", theme.VisualLiquid},
}

// FractionBar draws f as Denominator pieces. With filled set, the first
// Numerator pieces are shaded; otherwise only the outline is shown.
func FractionBar(f fraction.Fraction, visual catalog.VisualType, filled bool) string {
	g, ok := visualGlyphs[visual]
	if !ok {
		g = visualGlyphs[catalog.VisualRectangle]
	}
	cells := min(max(f.Denominator, 0), maxCells)
	full := 0
	if filled {
		full = min(max(f.Numerator, 0), cells)
	}

	on := lipgloss.NewStyle().Foreground(g.color).Render(strings.Repeat(g.full, full))
	off := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat(g.empty, cells-full))
	return on + off
}
