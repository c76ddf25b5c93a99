package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/vgacons"
)

// NewDumpCommand builds the dump command: a one-shot read-only print of
// the grid. With a physical mapping this reads whatever currently sits in
// hardware text memory; nothing goes through the writer.
func NewDumpCommand(loader *vgacons.Loader) *cobra.Command {
	var bindErr error

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the current screen contents and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			var fb *vgacons.FrameBuffer
			switch cfg.Console.Mapping {
			case vgacons.MappingPhysical:
				fb, err = vgacons.MapPhysical(cfg.Console.MemDevice)
				if err != nil {
					return err
				}
				defer fb.Close()
			default:
				fb = vgacons.NewEmulated()
			}

			snap := fb.Snapshot()
			for row := 0; row < vgacons.Height; row++ {
				fmt.Fprintln(cmd.OutOrStdout(), snap.Row(row))
			}
			return nil
		},
	}

	bindConsoleFlags(cmd, loader, &bindErr)

	return cmd
}
