package vga

import "testing"

func TestAttrPacksNibbles(t *testing.T) {
	attr := NewAttr(Cyan, Black)
	if attr != 0x03 {
		t.Fatalf("attr = %#x, want 0x03", uint8(attr))
	}
	attr = NewAttr(Yellow, Blue)
	if attr != 0x1e {
		t.Fatalf("attr = %#x, want 0x1e", uint8(attr))
	}
}

func TestAttrRoundTripsAllPairs(t *testing.T) {
	for fg := Black; fg <= White; fg++ {
		for bg := Black; bg <= White; bg++ {
			attr := NewAttr(fg, bg)
			if attr.Foreground() != fg {
				t.Fatalf("fg(%v,%v) = %v", fg, bg, attr.Foreground())
			}
			if attr.Background() != bg {
				t.Fatalf("bg(%v,%v) = %v", fg, bg, attr.Background())
			}
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("LightGreen")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != LightGreen {
		t.Fatalf("color = %v", c)
	}
	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Fatalf("expected error for unknown color")
	}
}

func TestColorCodesMatchPalette(t *testing.T) {
	if Black != 0x0 || White != 0xf {
		t.Fatalf("palette endpoints moved: black=%#x white=%#x", uint8(Black), uint8(White))
	}
	if Cyan != 0x3 || LightRed != 0xc {
		t.Fatalf("palette codes moved: cyan=%#x lightred=%#x", uint8(Cyan), uint8(LightRed))
	}
}
