// Package vgacons drives a fixed 80x25 text-mode display surface: a
// cursor-based writer over a memory-mapped character grid, with wrapping,
// scrolling, byte sanitization, and a process-wide serialized console.
//
// Output flows through Print and Println (or WithWriter for scoped
// access); the grid is observable read-only through TakeSnapshot. The
// console binds to an in-process emulated grid by default and can be
// rebound to a physically mapped surface with Attach.
package vgacons

import "pkt.systems/vgacons/internal/vga"

// Grid geometry of the text surface, fixed by the display hardware.
const (
	Height = vga.Height
	Width  = vga.Width
)

// Core types of the driver.
type (
	Color       = vga.Color
	Attr        = vga.Attr
	Cell        = vga.Cell
	Writer      = vga.Writer
	FrameBuffer = vga.FrameBuffer
	Snapshot    = vga.Snapshot
)

// The 16-entry hardware palette.
const (
	Black      = vga.Black
	Blue       = vga.Blue
	Green      = vga.Green
	Cyan       = vga.Cyan
	Red        = vga.Red
	Magenta    = vga.Magenta
	Brown      = vga.Brown
	LightGray  = vga.LightGray
	DarkGray   = vga.DarkGray
	LightBlue  = vga.LightBlue
	LightGreen = vga.LightGreen
	LightCyan  = vga.LightCyan
	LightRed   = vga.LightRed
	Pink       = vga.Pink
	Yellow     = vga.Yellow
	White      = vga.White
)

// NewAttr packs a foreground/background pair into an attribute byte.
func NewAttr(fg, bg Color) Attr {
	return vga.NewAttr(fg, bg)
}

// ParseColor resolves a palette name, typically from configuration.
func ParseColor(name string) (Color, error) {
	return vga.ParseColor(name)
}

// NewEmulated returns a framebuffer backed by ordinary process memory.
func NewEmulated() *FrameBuffer {
	return vga.NewEmulated()
}

// MapPhysical maps the hardware text surface from a physical memory
// device (Linux only).
func MapPhysical(device string) (*FrameBuffer, error) {
	return vga.MapPhysical(device)
}

// Attach rebinds the shared console to fb with a fresh cursor.
func Attach(fb *FrameBuffer) {
	vga.Attach(fb)
}

// SetDefaultAttr sets the paint attribute console writers are constructed
// with. It affects the next Attach or the first lazy construction, not a
// writer already in place.
func SetDefaultAttr(a Attr) {
	vga.DefaultAttr = a
}

// WithWriter runs f with exclusive access to the shared console writer.
func WithWriter(f func(*Writer)) {
	vga.WithWriter(f)
}

// Print formats its arguments and renders them at the shared cursor.
func Print(format string, args ...any) {
	vga.Print(format, args...)
}

// Println is Print with a line terminator; an empty format emits just the
// newline.
func Println(format string, args ...any) {
	vga.Println(format, args...)
}

// TakeSnapshot copies the shared grid read-only.
func TakeSnapshot() Snapshot {
	return vga.TakeSnapshot()
}
