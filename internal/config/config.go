// Package config loads the demo CLI configuration from flags, environment
// variables (STREAMDEMO_*) and an optional YAML file, in falling priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kabu1204/go-stream/internal/logging"
)

const EnvPrefix = "STREAMDEMO"

type Config struct {
	Log       logging.Config `yaml:"log" mapstructure:"log"`
	Workers   int            `yaml:"workers" mapstructure:"workers"`
	Scenarios []string       `yaml:"scenarios" mapstructure:"scenarios"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
	if c.Workers == 0 {
		c.Workers = 4
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive (got: %d)", c.Workers)
	}
	return nil
}

// NewFlagSet declares the command line flags of the demo.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-format", logging.FormatJSON, "log format (json, console)")
	fs.Bool("log-no-color", false, "disable colors in console logs")
	fs.Int("workers", 4, "number of scenarios run at once")
	fs.StringSlice("scenario", nil, "scenario to run, repeatable; all when omitted")
	return fs
}

// Load parses args with fs and merges them over the environment and the
// config file.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"log.no_color": "log-no-color",
		"workers":      "workers",
		"scenarios":    "scenario",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
