// Package config resolves run settings from defaults, an optional YAML
// file, AOC_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved settings.
type Config struct {
	InputsDir   string `mapstructure:"inputs_dir"`
	ExamplesDir string `mapstructure:"examples_dir"`
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log_level"`
}

// Defaults.
const (
	DefaultInputsDir   = "inputs"
	DefaultExamplesDir = "examples"
	DefaultOutput      = "text"
	DefaultLogLevel    = "warn"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"inputs-dir":   "inputs_dir",
	"examples-dir": "examples_dir",
	"output":       "output",
	"log-level":    "log_level",
}

// Load resolves the configuration. path names an explicit config file
// (AOC_CONFIG is used when empty); without one, ./aoc.yaml is read if it
// exists. flags may be nil; only flags the user actually set override
// file and environment values.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("inputs_dir", DefaultInputsDir)
	v.SetDefault("examples_dir", DefaultExamplesDir)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv("AOC_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("aoc")
	}

	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	return c, nil
}
