package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗ ██████╗ ███████╗██╗████████╗
 ██╔══██╗██║██╔═══██╗██╔════╝██║╚══██╔══╝
 ██████╔╝██║██║   ██║█████╗  ██║   ██║
 ██╔══██╗██║██║   ██║██╔══╝  ██║   ██║
 ██████╔╝██║╚██████╔╝██║     ██║   ██║
 ╚═════╝ ╚═╝ ╚═════╝ ╚═╝     ╚═╝   ╚═╝`

const bannerCompact = "B I O F I T"

// RenderBanner returns the BIOFIT banner in the brand green, with a compact
// fallback for terminals narrower than 46 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 46 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
