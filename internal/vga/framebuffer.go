package vga

import (
	"sync/atomic"
	"unsafe"
)

// Grid geometry of the text-mode surface. Fixed by the display adapter.
const (
	Height = 25
	Width  = 80

	cellBytes = 2

	// BufferSize is the byte length of the memory-mapped surface:
	// Height*Width cells of two bytes each, no gaps.
	BufferSize = Height * Width * cellBytes
)

// FrameBuffer is the fixed-geometry grid of Cells backing the visible
// display. The backing words may be observed and rendered by hardware
// outside the process, so every access goes through an atomic load or
// store: each Read and Write is a real memory transaction that the
// compiler cannot cache, elide, or reorder.
//
// FrameBuffer performs no bounds checking; callers must keep row < Height
// and col < Width. Out-of-range access is a caller bug, not a recoverable
// error.
type FrameBuffer struct {
	words *[Height * Width]uint16

	// mapped is the raw mapping when the buffer is bound to a physical
	// memory device; nil for emulated buffers.
	mapped []byte
}

// NewEmulated returns a framebuffer backed by ordinary process memory with
// the same geometry and access discipline as the hardware surface. Used by
// tests, the terminal presenter, and the default shared console.
func NewEmulated() *FrameBuffer {
	return &FrameBuffer{words: new([Height * Width]uint16)}
}

// Read returns the current cell at (row, col).
func (fb *FrameBuffer) Read(row, col int) Cell {
	return cellFromWord(loadUint16(&fb.words[row*Width+col]))
}

// Write commits a cell at (row, col). The write is immediately visible to
// any external observer of the backing memory.
func (fb *FrameBuffer) Write(row, col int, c Cell) {
	storeUint16(&fb.words[row*Width+col], c.word())
}

// Close releases a physical mapping. Emulated buffers have nothing to
// release. The framebuffer must not be used after Close.
func (fb *FrameBuffer) Close() error {
	if fb.mapped == nil {
		return nil
	}
	data := fb.mapped
	fb.mapped = nil
	fb.words = nil
	return munmap(data)
}

// sync/atomic has no 16-bit operations, so the cell words are accessed
// through the aligned 32-bit word that contains them. The grid base is at
// least 4-byte aligned (Go heap allocation or a page-aligned mapping) and
// Width is even, so every cell word sits wholly inside one aligned uint32.
// Byte selection below assumes little-endian order, matching the cell word
// layout.

func loadUint16(addr *uint16) uint16 {
	base, shift := containing32(addr)
	return uint16(atomic.LoadUint32(base) >> shift)
}

func storeUint16(addr *uint16, val uint16) {
	base, shift := containing32(addr)
	mask := uint32(0xFFFF) << shift
	for {
		old := atomic.LoadUint32(base)
		next := (old &^ mask) | uint32(val)<<shift
		if atomic.CompareAndSwapUint32(base, old, next) {
			return
		}
	}
}

func containing32(addr *uint16) (*uint32, uint) {
	shift := uint(uintptr(unsafe.Pointer(addr))&2) * 8
	return (*uint32)(unsafe.Pointer(uintptr(unsafe.Pointer(addr)) &^ 3)), shift
}

// Snapshot is a read-only copy of the grid taken for external verifiers.
// It bypasses the Writer and mutates nothing.
type Snapshot struct {
	Cells [Height][Width]Cell
}

// Snapshot copies the current grid contents.
func (fb *FrameBuffer) Snapshot() Snapshot {
	var snap Snapshot
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			snap.Cells[row][col] = fb.Read(row, col)
		}
	}
	return snap
}

// Row renders one snapshot row as a string, one byte per cell.
func (s *Snapshot) Row(row int) string {
	b := make([]byte, Width)
	for col := 0; col < Width; col++ {
		b[col] = s.Cells[row][col].Char
	}
	return string(b)
}
