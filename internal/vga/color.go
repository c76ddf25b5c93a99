package vga

import (
	"fmt"
	"strings"
)

// Color is one of the 16 palette entries the text-mode hardware understands.
// The 4-bit codes are part of the hardware contract and must not be
// renumbered.
type Color uint8

const (
	Black      Color = 0x0
	Blue       Color = 0x1
	Green      Color = 0x2
	Cyan       Color = 0x3
	Red        Color = 0x4
	Magenta    Color = 0x5
	Brown      Color = 0x6
	LightGray  Color = 0x7
	DarkGray   Color = 0x8
	LightBlue  Color = 0x9
	LightGreen Color = 0xa
	LightCyan  Color = 0xb
	LightRed   Color = 0xc
	Pink       Color = 0xd
	Yellow     Color = 0xe
	White      Color = 0xf
)

var colorNames = [16]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "pink",
	"yellow", "white",
}

func (c Color) String() string {
	if c > White {
		return fmt.Sprintf("color(%#x)", uint8(c))
	}
	return colorNames[c]
}

// ParseColor resolves a palette name from configuration. Matching is
// case-insensitive.
func ParseColor(name string) (Color, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == needle {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}

// Attr packs a foreground and background color into the attribute byte the
// hardware stores alongside each character: background in bits 4-7,
// foreground in bits 0-3.
type Attr uint8

// NewAttr builds the attribute byte for a color pair.
func NewAttr(fg, bg Color) Attr {
	return Attr(uint8(bg)<<4 | uint8(fg)&0x0f)
}

// Foreground returns the low nibble of the attribute.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the high nibble of the attribute.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

func (a Attr) String() string {
	return fmt.Sprintf("%s on %s", a.Foreground(), a.Background())
}
