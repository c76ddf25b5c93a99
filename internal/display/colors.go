package display

import (
	"github.com/gdamore/tcell/v2"

	"pkt.systems/vgacons/internal/vga"
)

// palette maps the 16 hardware palette entries to the classic adapter RGB
// values, indexed by color code.
var palette = [16]tcell.Color{
	tcell.NewRGBColor(0x00, 0x00, 0x00), // black
	tcell.NewRGBColor(0x00, 0x00, 0xaa), // blue
	tcell.NewRGBColor(0x00, 0xaa, 0x00), // green
	tcell.NewRGBColor(0x00, 0xaa, 0xaa), // cyan
	tcell.NewRGBColor(0xaa, 0x00, 0x00), // red
	tcell.NewRGBColor(0xaa, 0x00, 0xaa), // magenta
	tcell.NewRGBColor(0xaa, 0x55, 0x00), // brown
	tcell.NewRGBColor(0xaa, 0xaa, 0xaa), // light gray
	tcell.NewRGBColor(0x55, 0x55, 0x55), // dark gray
	tcell.NewRGBColor(0x55, 0x55, 0xff), // light blue
	tcell.NewRGBColor(0x55, 0xff, 0x55), // light green
	tcell.NewRGBColor(0x55, 0xff, 0xff), // light cyan
	tcell.NewRGBColor(0xff, 0x55, 0x55), // light red
	tcell.NewRGBColor(0xff, 0x55, 0xff), // pink
	tcell.NewRGBColor(0xff, 0xff, 0x55), // yellow
	tcell.NewRGBColor(0xff, 0xff, 0xff), // white
}

func styleFor(attr vga.Attr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(palette[attr.Foreground()]).
		Background(palette[attr.Background()])
}

// glyphRune maps a stored character code to a presentable rune. The writer
// only ever stores printable ASCII, blanks, and the invalid glyph; anything
// else renders as '?' so a stray code stays visible.
func glyphRune(b uint8) rune {
	switch {
	case b == 0:
		return ' '
	case b >= 0x20 && b <= 0x7e:
		return rune(b)
	case b == 0xfe:
		return '■'
	default:
		return '?'
	}
}
