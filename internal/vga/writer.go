package vga

// invalidGlyph is the code page 437 substitute written for any byte the
// writer cannot render.
const invalidGlyph = 0xFE

const blankChar = ' '

// Writer paints bytes into the bottom row of a framebuffer, tracking the
// cursor column and wrapping and scrolling as lines fill. Older output
// moves upward through scrolling; writes always target row Height-1.
//
// Writer is not safe for concurrent use. WithWriter serializes access to
// the shared instance.
type Writer struct {
	column int
	attr   Attr
	fb     *FrameBuffer
}

// NewWriter returns a writer over fb painting with attr. The attribute is
// fixed for the writer's lifetime.
func NewWriter(fb *FrameBuffer, attr Attr) *Writer {
	return &Writer{attr: attr, fb: fb}
}

// WriteString renders s byte-wise. A byte is printable if it is ASCII
// 0x20..0x7E or newline; every other byte is replaced with the invalid
// glyph, one glyph per raw byte. A multi-byte encoded character therefore
// occupies one cell per constituent byte.
func (w *Writer) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\n' || (b >= 0x20 && b <= 0x7e):
			w.writeByte(b)
		default:
			w.writeByte(invalidGlyph)
		}
	}
}

// Write implements io.Writer so formatted output can target a held writer.
// It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.WriteString(string(p))
	return len(p), nil
}

// writeByte places one pre-sanitized byte. A full line is flushed by
// scrolling before the overflowing byte is placed, so the byte that
// triggers the wrap lands at column 0 of the fresh bottom row.
func (w *Writer) writeByte(b byte) {
	if b == '\n' {
		w.newLine()
		return
	}
	if w.column >= Width {
		w.newLine()
	}
	w.fb.Write(Height-1, w.column, Cell{Char: b, Attr: w.attr})
	w.column++
}

// newLine scrolls the grid: rows 1..Height-1 shift up by one, the top row
// is discarded, and the bottom row is blanked for new output.
func (w *Writer) newLine() {
	for row := 1; row < Height; row++ {
		for col := 0; col < Width; col++ {
			w.fb.Write(row-1, col, w.fb.Read(row, col))
		}
	}
	w.column = 0
	w.clearLine(Height - 1)
}

func (w *Writer) clearLine(row int) {
	blank := Cell{Char: blankChar, Attr: w.attr}
	for col := 0; col < Width; col++ {
		w.fb.Write(row, col, blank)
	}
}

// ClearScreen blanks the whole grid and rewinds the cursor. A diagnostic
// affordance, not part of the normal output flow.
func (w *Writer) ClearScreen() {
	for row := 0; row < Height; row++ {
		w.clearLine(row)
	}
	w.column = 0
}

// Column returns the column the next byte lands in.
func (w *Writer) Column() int {
	return w.column
}

// Attr returns the writer's paint attribute.
func (w *Writer) Attr() Attr {
	return w.attr
}

// Snapshot copies the writer's grid without altering it.
func (w *Writer) Snapshot() Snapshot {
	return w.fb.Snapshot()
}
