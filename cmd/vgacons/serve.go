package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pkt.systems/pslog"

	"pkt.systems/vgacons"
)

// NewServeCommand builds the inspection server command.
func NewServeCommand(loader *vgacons.Loader) *cobra.Command {
	var bindErr error

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the console grid read-only over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := pslog.Ctx(cmd.Context()).With("component", "serve")
			return vgacons.Serve(ctx, vgacons.ServeOptions{
				Config: cfg,
				Logger: logger,
			})
		},
	}

	bindConsoleFlags(cmd, loader, &bindErr)

	flags := cmd.Flags()
	flags.String("listen", vgacons.DefaultListenAddr, "listen address for the inspection server")
	if bindErr == nil {
		bindErr = loader.Viper().BindPFlag("serve.listen", flags.Lookup("listen"))
	}

	return cmd
}
