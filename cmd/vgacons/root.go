package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/vgacons"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *vgacons.Loader) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "vgacons",
		Short: "Text-mode console driver: demo display, inspection server, screen dump",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewDemoCommand(loader))
	cmd.AddCommand(NewServeCommand(loader))
	cmd.AddCommand(NewDumpCommand(loader))

	return cmd
}

// bindConsoleFlags attaches the console flags shared by the demo and serve
// commands and binds them over the loader defaults.
func bindConsoleFlags(cmd *cobra.Command, loader *vgacons.Loader, bindErr *error) {
	flags := cmd.Flags()
	flags.String("foreground", vgacons.DefaultForeground, "console foreground color")
	flags.String("background", vgacons.DefaultBackground, "console background color")
	flags.String("mapping", vgacons.DefaultMapping, "framebuffer mapping: emulated or physical")
	flags.String("mem-device", vgacons.DefaultMemDevice, "physical memory device for mapping")

	v := loader.Viper()
	bind := func(key, name string) {
		if *bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			*bindErr = err
		}
	}
	bind("console.foreground", "foreground")
	bind("console.background", "background")
	bind("console.mapping", "mapping")
	bind("console.mem_device", "mem-device")
}
