// Package display presents an emulated text-mode framebuffer in a real
// terminal. It reads the grid through snapshots only; all mutation stays
// behind the console writer.
package display

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"pkt.systems/pslog"

	"pkt.systems/vgacons/internal/vga"
)

// DefaultRefresh is how often the presenter redraws the grid.
const DefaultRefresh = 50 * time.Millisecond

// Options configures a Display.
type Options struct {
	Refresh time.Duration
	Logger  pslog.Logger
}

// Display renders a framebuffer via tcell until stopped.
type Display struct {
	screen  tcell.Screen
	fb      *vga.FrameBuffer
	logger  pslog.Logger
	refresh time.Duration
}

// New initializes the terminal screen for fb. Callers must Run to start
// presenting; Run restores the terminal on exit.
func New(fb *vga.FrameBuffer, opts Options) (*Display, error) {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = DefaultRefresh
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	return &Display{
		screen:  screen,
		fb:      fb,
		logger:  logger,
		refresh: refresh,
	}, nil
}

// Run redraws the grid on every refresh tick until the context is
// canceled or the user presses Escape or Ctrl-C. The terminal is restored
// before returning.
func (d *Display) Run(ctx context.Context) error {
	defer d.screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(d.refresh)
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					d.logger.Debug("display exit requested")
					return nil
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}
		case <-ticker.C:
			d.draw()
		}
	}
}

func (d *Display) draw() {
	snap := d.fb.Snapshot()
	for row := 0; row < vga.Height; row++ {
		for col := 0; col < vga.Width; col++ {
			cell := snap.Cells[row][col]
			d.screen.SetContent(col, row, glyphRune(cell.Char), nil, styleFor(cell.Attr))
		}
	}
	d.screen.Show()
}
