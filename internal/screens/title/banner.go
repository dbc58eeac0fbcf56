package title

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗  █████╗  ██████╗████████╗██╗███████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝╚══██╔══╝██║╚══███╔╝
 █████╗  ██████╔╝███████║██║        ██║   ██║  ███╔╝
 ██╔══╝  ██╔══██╗██╔══██║██║        ██║   ██║ ███╔╝
 ██║     ██║  ██║██║  ██║╚██████╗   ██║   ██║███████╗
 ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝   ╚═╝   ╚═╝╚══════╝`

const bannerCompact = "F R A C T I Z"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 53

// RenderBanner returns the FRACTIZ banner, falling back to spaced letters
// when the terminal is narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
