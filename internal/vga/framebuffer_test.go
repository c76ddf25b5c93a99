package vga

import (
	"sync"
	"testing"
)

func TestEmulatedBufferReadsBackWrites(t *testing.T) {
	fb := NewEmulated()
	c := Cell{Char: '@', Attr: NewAttr(Green, Black)}
	fb.Write(12, 40, c)
	if got := fb.Read(12, 40); got != c {
		t.Fatalf("read = %+v, want %+v", got, c)
	}
	if got := fb.Read(12, 41); got.Char != 0 {
		t.Fatalf("neighbor cell disturbed: %+v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	fb := NewEmulated()
	fb.Write(0, 0, Cell{Char: 'a'})
	snap := fb.Snapshot()
	fb.Write(0, 0, Cell{Char: 'b'})
	if snap.Cells[0][0].Char != 'a' {
		t.Fatalf("snapshot tracked later write: %q", snap.Cells[0][0].Char)
	}
	if got := fb.Read(0, 0); got.Char != 'b' {
		t.Fatalf("buffer = %q", got.Char)
	}
}

func TestSnapshotRowRendersBytes(t *testing.T) {
	fb := NewEmulated()
	for col, ch := range []byte("grid") {
		fb.Write(3, col, Cell{Char: ch})
	}
	snap := fb.Snapshot()
	if got := snap.Row(3)[:4]; got != "grid" {
		t.Fatalf("row = %q", got)
	}
}

func TestConcurrentCellAccessIsWordAtomic(t *testing.T) {
	fb := NewEmulated()
	want := map[Cell]bool{
		{Char: 'x', Attr: NewAttr(Red, Black)}:  true,
		{Char: 'y', Attr: NewAttr(Blue, White)}: true,
		{}:                                      true,
	}

	var writers sync.WaitGroup
	for c := range want {
		writers.Add(1)
		go func(c Cell) {
			defer writers.Done()
			for i := 0; i < 5000; i++ {
				fb.Write(0, 0, c)
			}
		}(c)
	}
	done := make(chan struct{})
	go func() {
		writers.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		// A torn cell would pair one writer's char with another's attr.
		if got := fb.Read(0, 0); !want[got] {
			t.Fatalf("torn cell: %+v", got)
		}
	}
}

func TestEmulatedCloseIsNoOp(t *testing.T) {
	fb := NewEmulated()
	if err := fb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
