package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limbcalc/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default, waving
	MascotCelebrating                      // Gold, both hands up after a full count
)

const mascotIdle = `  ┌─────┐
  │ ◉ ◉ │  ✋
  │  ▽  │ ╱
  │ 1+1 │
  └─────┘`

const mascotCelebrating = `✋┌─────┐✋
 ╲│ ★ ★ │╱
  │  ▿  │
  │ =20 │
  └─────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art, fg := mascotIdle, theme.Primary
	if v == MascotCelebrating {
		art, fg = mascotCelebrating, theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
