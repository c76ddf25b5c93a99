package main

import (
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"pkt.systems/vgacons"
)

// NewDemoCommand builds the demo command: boot banner on a live display.
func NewDemoCommand(loader *vgacons.Loader) *cobra.Command {
	var bindErr error

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the boot banner and present the console in this terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			// The presenter owns the terminal, so diagnostics go to a
			// file when configured and nowhere otherwise.
			logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(io.Discard))
			var closer io.Closer
			if cfg.Console.LogFile != "" {
				logger, closer, err = openLogger(cfg.Console.LogFile)
				if err != nil {
					return err
				}
				defer func() {
					_ = closer.Close()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return vgacons.Demo(ctx, vgacons.DemoOptions{
				Config: cfg,
				Logger: logger.With("component", "demo"),
			})
		},
	}

	bindConsoleFlags(cmd, loader, &bindErr)

	flags := cmd.Flags()
	flags.String("log-file", "", "write diagnostics to this file")
	if bindErr == nil {
		bindErr = loader.Viper().BindPFlag("console.log_file", flags.Lookup("log-file"))
	}

	return cmd
}
