package home

import (
	"charm.land/lipgloss/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/theme"
)

const bannerArt = `
  ██████╗  ██████╗████████╗     ██████╗ ██████╗ ███╗   ██╗███╗   ██╗███████╗ ██████╗████████╗
 ██╔════╝ ██╔════╝╚══██╔══╝    ██╔════╝██╔═══██╗████╗  ██║████╗  ██║██╔════╝██╔════╝╚══██╔══╝
 ██║  ███╗██║        ██║       ██║     ██║   ██║██╔██╗ ██║██╔██╗ ██║█████╗  ██║        ██║
 ██║   ██║██║        ██║       ██║     ██║   ██║██║╚██╗██║██║╚██╗██║██╔══╝  ██║        ██║
 ╚██████╔╝╚██████╗   ██║       ╚██████╗╚██████╔╝██║ ╚████║██║ ╚████║███████╗╚██████╗   ██║
  ╚═════╝  ╚═════╝   ╚═╝        ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═══╝╚══════╝ ╚═════╝   ╚═╝`

const bannerCompact = "G C T   C O N N E C T"

var statsStyle = lipgloss.NewStyle().Foreground(theme.TextDim)

// renderBanner returns the GCT CONNECT banner styled in the primary color,
// with a compact fallback for narrow terminals.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 96 {
		return style.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, bannerCompact))
	}
	return style.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, bannerArt))
}
