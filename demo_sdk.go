package vgacons

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
	"pkt.systems/pslog"

	"pkt.systems/vgacons/internal/display"
)

// Version is the driver version the boot banner reports.
const Version = "0.1.0"

// DemoOptions configures a demo run.
type DemoOptions struct {
	Config Config
	Logger pslog.Logger
}

// Demo binds the console per configuration, prints the boot banner, and,
// for emulated mappings, presents the grid in the current terminal until
// the user exits. An uptime line is printed every second so wrapping and
// scrolling stay visible.
func Demo(ctx context.Context, opts DemoOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	fb, err := bindConsole(opts.Config.Console)
	if err != nil {
		return err
	}
	defer fb.Close()

	printBanner()

	if opts.Config.Console.Mapping == MappingPhysical {
		// The banner landed on the hardware surface; there is nothing to
		// present locally.
		logger.Info("banner written to physical surface")
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("demo needs a terminal to present the emulated display")
	}

	d, err := display.New(fb, display.Options{
		Logger: logger.With("component", "display"),
	})
	if err != nil {
		return err
	}

	go func() {
		start := time.Now()
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Println("uptime: %s", time.Since(start).Round(time.Second))
			}
		}
	}()

	return d.Run(ctx)
}

// bindConsole parses the configured color pair, attaches the console to
// the configured framebuffer kind, and returns the bound buffer.
func bindConsole(cc ConsoleConfig) (*FrameBuffer, error) {
	fgName := cc.Foreground
	if fgName == "" {
		fgName = DefaultForeground
	}
	bgName := cc.Background
	if bgName == "" {
		bgName = DefaultBackground
	}
	fg, err := ParseColor(fgName)
	if err != nil {
		return nil, fmt.Errorf("console foreground: %w", err)
	}
	bg, err := ParseColor(bgName)
	if err != nil {
		return nil, fmt.Errorf("console background: %w", err)
	}
	SetDefaultAttr(NewAttr(fg, bg))

	var fb *FrameBuffer
	switch cc.Mapping {
	case MappingPhysical:
		fb, err = MapPhysical(cc.MemDevice)
		if err != nil {
			return nil, err
		}
	case MappingEmulated, "":
		fb = NewEmulated()
	default:
		return nil, fmt.Errorf("unknown console mapping %q", cc.Mapping)
	}
	Attach(fb)
	return fb, nil
}

func printBanner() {
	Println("vgacons")
	Println("-------")
	Println("version: %s", Version)
}
