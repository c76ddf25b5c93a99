package vgacons

import "pkt.systems/vgacons/internal/config"

// Configuration surface re-exported for embedders and the CLI.
type (
	Config        = config.Config
	ConsoleConfig = config.ConsoleConfig
	ServeConfig   = config.ServeConfig
	Loader        = config.Loader
)

// Mapping modes for the console framebuffer binding.
const (
	MappingEmulated = config.MappingEmulated
	MappingPhysical = config.MappingPhysical
)

// Defaults applied by NewLoader.
const (
	DefaultForeground = config.DefaultForeground
	DefaultBackground = config.DefaultBackground
	DefaultMapping    = config.DefaultMapping
	DefaultMemDevice  = config.DefaultMemDevice
	DefaultListenAddr = config.DefaultListenAddr
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}
