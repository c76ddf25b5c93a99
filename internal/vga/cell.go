package vga

// Cell is the atomic hardware-visible unit: one character code plus the
// attribute byte that colors it.
type Cell struct {
	Char uint8
	Attr Attr
}

// word returns the 16-bit value the hardware stores for a cell: character
// code in the low byte, attribute in the high byte. The ordering matches
// the display adapter's memory layout and must not change.
func (c Cell) word() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

func cellFromWord(w uint16) Cell {
	return Cell{Char: uint8(w), Attr: Attr(w >> 8)}
}
