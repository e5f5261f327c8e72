package home

import (
	"charm.land/lipgloss/v2"

	"github.com/santgross/BIOFIT-EXPERT/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Green capsule
	MascotCelebrating                      // Gold, star eyes: every module complete
	MascotAlert                            // Orange: guest mode
)

const mascotIdle = ` ╭─────╮
 │ ◉ ◉ │
 │  ◡  │
 ├─────┤
 │ FIT │
 ╰─────╯`

const mascotCelebrating = `\╭─────╮/
 │ ★ ★ │
 │  ▽  │
 ├─────┤
 │ FIT │
 ╰─────╯`

const mascotAlert = ` ╭─────╮
 │ ◉ ◉ │ !
 │  ○  │
 ├─────┤
 │ FIT │
 ╰─────╯`

// RenderMascot returns the capsule mascot for the given variant.
func RenderMascot(variant MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	switch variant {
	case MascotCelebrating:
		art, fg = mascotCelebrating, theme.ArcadeYellow
	case MascotAlert:
		art, fg = mascotAlert, theme.Accent
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
