package config

// Mapping modes for the console framebuffer binding.
const (
	MappingEmulated = "emulated"
	MappingPhysical = "physical"
)

// Defaults applied by NewLoader.
const (
	DefaultForeground = "cyan"
	DefaultBackground = "black"
	DefaultMapping    = MappingEmulated
	DefaultMemDevice  = "/dev/mem"
	DefaultListenAddr = "127.0.0.1:8633"
)
