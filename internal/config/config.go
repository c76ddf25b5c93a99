package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for vgacons.
type Config struct {
	Console ConsoleConfig `mapstructure:"console" yaml:"console"`
	Serve   ServeConfig   `mapstructure:"serve" yaml:"serve"`
}

// ConsoleConfig configures the shared console writer and its framebuffer
// binding.
type ConsoleConfig struct {
	Foreground string `mapstructure:"foreground" yaml:"foreground"`
	Background string `mapstructure:"background" yaml:"background"`
	Mapping    string `mapstructure:"mapping" yaml:"mapping"`
	MemDevice  string `mapstructure:"mem_device" yaml:"mem_device"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
}

// ServeConfig configures the inspection server.
type ServeConfig struct {
	Listen string `mapstructure:"listen" yaml:"listen"`
}

// Loader wraps Viper configuration loading for vgacons.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("VGACONS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vgacons")

	v.SetDefault("console.foreground", DefaultForeground)
	v.SetDefault("console.background", DefaultBackground)
	v.SetDefault("console.mapping", DefaultMapping)
	v.SetDefault("console.mem_device", DefaultMemDevice)
	v.SetDefault("serve.listen", DefaultListenAddr)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// Load reads configuration, if any is present, and unmarshals it.
func (l *Loader) Load() (Config, error) {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
