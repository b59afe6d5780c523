package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/vitalvision/vitalvision/internal/ui/theme"
)

const bannerArt = `
 ╦  ╦╦╔╦╗╔═╗╦    ╦  ╦╦╔═╗╦╔═╗╔╗╔
 ╚╗╔╝║ ║ ╠═╣║    ╚╗╔╝║╚═╗║║ ║║║║
  ╚╝ ╩ ╩ ╩ ╩╩═╝   ╚╝ ╩╚═╝╩╚═╝╝╚╝`

const bannerCompact = "V I T A L  V I S I O N"

// RenderBanner returns the banner styled in the primary color, falling back
// to spaced letters on terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
