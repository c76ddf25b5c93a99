package vga

import (
	"fmt"
	"sync"
)

// The display adapter is a single process-wide resource, so one shared
// Writer sits behind a package-level lock. It is constructed lazily on
// first use and never torn down; the process either keeps the console for
// its whole lifetime or exits.

// DefaultAttr is the paint attribute the shared writer starts with.
var DefaultAttr = NewAttr(Cyan, Black)

var (
	consoleMu sync.Mutex
	console   *Writer
)

// sharedLocked returns the shared writer, constructing it on first use.
// Callers must hold consoleMu.
func sharedLocked() *Writer {
	if console == nil {
		console = NewWriter(NewEmulated(), DefaultAttr)
	}
	return console
}

// WithWriter runs f with exclusive access to the shared writer. The lock
// is held for the whole call, so output from one caller is never
// interleaved with another's; it is released on all paths.
func WithWriter(f func(*Writer)) {
	consoleMu.Lock()
	defer consoleMu.Unlock()
	f(sharedLocked())
}

// Attach rebinds the shared console to fb with a fresh cursor. Callers use
// it to point the console at a physically mapped surface, or at a private
// emulated grid under test. The previous framebuffer is not closed.
func Attach(fb *FrameBuffer) {
	consoleMu.Lock()
	defer consoleMu.Unlock()
	console = NewWriter(fb, DefaultAttr)
}

// Print formats its arguments and renders them at the shared cursor.
func Print(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	WithWriter(func(w *Writer) {
		w.WriteString(text)
	})
}

// Println is Print with a line terminator. An empty format emits just the
// newline.
func Println(format string, args ...any) {
	Print(format+"\n", args...)
}

// TakeSnapshot copies the shared grid under the console lock, read-only.
func TakeSnapshot() Snapshot {
	var snap Snapshot
	WithWriter(func(w *Writer) {
		snap = w.Snapshot()
	})
	return snap
}
