package vga

import (
	"strings"
	"testing"
)

func TestWriteLandsOnBottomRow(t *testing.T) {
	w := newTestWriter()
	w.WriteString("HELLO")
	want := []byte{'H', 'E', 'L', 'L', 'O'}
	for col, ch := range want {
		cell := w.fb.Read(Height-1, col)
		if cell.Char != ch {
			t.Fatalf("cell(%d,%d) = %q, want %q", Height-1, col, cell.Char, ch)
		}
		if cell.Attr != w.attr {
			t.Fatalf("cell(%d,%d) attr = %v, want %v", Height-1, col, cell.Attr, w.attr)
		}
	}
	if w.Column() != len(want) {
		t.Fatalf("column = %d, want %d", w.Column(), len(want))
	}
}

func TestColumnNeverExceedsWidth(t *testing.T) {
	w := newTestWriter()
	for i := 0; i < Width*3+7; i++ {
		w.writeByte('x')
		if w.Column() > Width {
			t.Fatalf("column = %d after %d writes", w.Column(), i+1)
		}
	}
}

func TestWrapBeforeWrite(t *testing.T) {
	w := newTestWriter()
	line := strings.Repeat("a", Width)
	w.WriteString(line + "b")

	if got := rowString(w.fb, Height-2); got != line {
		t.Fatalf("row above = %q", got)
	}
	if cell := w.fb.Read(Height-1, 0); cell.Char != 'b' {
		t.Fatalf("overflow byte = %q, want 'b'", cell.Char)
	}
	if w.Column() != 1 {
		t.Fatalf("column = %d, want 1", w.Column())
	}
}

func TestLongLineBreaks(t *testing.T) {
	w := newTestWriter()
	s := strings.Repeat("0123456789", (Width+35)/10+1)[:Width+35]
	w.WriteString(s)

	if got := rowString(w.fb, Height-2); got != s[:Width] {
		t.Fatalf("upper row = %q", got)
	}
	if got := rowString(w.fb, Height-1)[:35]; got != s[Width:] {
		t.Fatalf("bottom row = %q", got)
	}
	if got := rowString(w.fb, Height-1)[35:]; got != strings.Repeat(" ", Width-35) {
		t.Fatalf("bottom row tail not blank: %q", got)
	}
}

func TestNewlineSeparatesLines(t *testing.T) {
	w := newTestWriter()
	w.WriteString("first line\nsecond line")

	if got := rowString(w.fb, Height-2); !strings.HasPrefix(got, "first line") {
		t.Fatalf("row above = %q", got)
	}
	if got := rowString(w.fb, Height-1); !strings.HasPrefix(got, "second line") {
		t.Fatalf("bottom row = %q", got)
	}
}

func TestScrollDiscardsTopRow(t *testing.T) {
	w := newTestWriter()
	// Stamp a marker where scrolled content can be tracked.
	w.fb.Write(0, 0, Cell{Char: 'T', Attr: w.attr})
	w.fb.Write(1, 0, Cell{Char: 'U', Attr: w.attr})

	w.newLine()

	if cell := w.fb.Read(0, 0); cell.Char != 'U' {
		t.Fatalf("row 0 after scroll = %q, want 'U'", cell.Char)
	}
	if got := rowString(w.fb, Height-1); got != strings.Repeat(" ", Width) {
		t.Fatalf("bottom row not blank after scroll: %q", got)
	}
	if w.Column() != 0 {
		t.Fatalf("column = %d after newline", w.Column())
	}
}

func TestRepeatedScrollMovesContentUp(t *testing.T) {
	w := newTestWriter()
	w.WriteString("one\ntwo\nthree\n")

	if got := rowString(w.fb, Height-4); !strings.HasPrefix(got, "one") {
		t.Fatalf("row -4 = %q", got)
	}
	if got := rowString(w.fb, Height-3); !strings.HasPrefix(got, "two") {
		t.Fatalf("row -3 = %q", got)
	}
	if got := rowString(w.fb, Height-2); !strings.HasPrefix(got, "three") {
		t.Fatalf("row -2 = %q", got)
	}
}

func TestInvalidBytesSubstituted(t *testing.T) {
	w := newTestWriter()
	w.WriteString("\x01\x7f\x9c")
	for col := 0; col < 3; col++ {
		if cell := w.fb.Read(Height-1, col); cell.Char != invalidGlyph {
			t.Fatalf("cell %d = %#x, want %#x", col, cell.Char, invalidGlyph)
		}
	}
}

func TestMultiByteCharactersSubstitutedPerByte(t *testing.T) {
	w := newTestWriter()
	w.ClearScreen()
	// Four characters, two bytes each in UTF-8: eight glyph cells.
	w.WriteString("áçãó")

	for col := 0; col < 8; col++ {
		if cell := w.fb.Read(Height-1, col); cell.Char != invalidGlyph {
			t.Fatalf("cell %d = %#x, want %#x", col, cell.Char, invalidGlyph)
		}
	}
	for col := 8; col < Width; col++ {
		if cell := w.fb.Read(Height-1, col); cell.Char != blankChar {
			t.Fatalf("cell %d = %q, want blank", col, cell.Char)
		}
	}
}

func TestClearLineBlanksFullWidth(t *testing.T) {
	w := newTestWriter()
	w.WriteString(strings.Repeat("z", Width))
	w.clearLine(Height - 1)
	for col := 0; col < Width; col++ {
		cell := w.fb.Read(Height-1, col)
		if cell.Char != blankChar {
			t.Fatalf("cell %d = %q after clear", col, cell.Char)
		}
		if cell.Attr != w.attr {
			t.Fatalf("cell %d attr = %v after clear", col, cell.Attr)
		}
	}
}

func TestClearScreenRewindsCursor(t *testing.T) {
	w := newTestWriter()
	w.WriteString("leftovers\nmore leftovers")
	w.ClearScreen()
	if w.Column() != 0 {
		t.Fatalf("column = %d after clear", w.Column())
	}
	for row := 0; row < Height; row++ {
		if got := rowString(w.fb, row); got != strings.Repeat(" ", Width) {
			t.Fatalf("row %d not blank: %q", row, got)
		}
	}
}

func TestWriterImplementsIOWriter(t *testing.T) {
	w := newTestWriter()
	n, err := w.Write([]byte("ok"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != 2 {
		t.Fatalf("n = %d", n)
	}
	if got := rowString(w.fb, Height-1); !strings.HasPrefix(got, "ok") {
		t.Fatalf("row = %q", got)
	}
}

func newTestWriter() *Writer {
	return NewWriter(NewEmulated(), NewAttr(LightGray, Black))
}

func rowString(fb *FrameBuffer, row int) string {
	b := make([]byte, Width)
	for col := 0; col < Width; col++ {
		b[col] = fb.Read(row, col).Char
	}
	return string(b)
}
