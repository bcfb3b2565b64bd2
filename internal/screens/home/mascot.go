package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/peekaboo/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // peeking owl
	MascotCelebrating                      // unseen stickers in the book
	MascotAlert                            // next unlock is close
)

const mascotIdle = `  ,___,
  (o,o)
  /)  )
 ──"─"──`

const mascotCelebrating = ` \,___,/
  (^,^)
  /)  )
 ──"─"──`

const mascotAlert = `  ,___,  !
  (O,O)
  /)  )
 ──"─"──`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
