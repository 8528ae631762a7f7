package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds run defaults that command-line flags override. Everything
// here is optional; the zero configuration is fully usable.
type Config struct {
	// Branch is the branch reference to read history from.
	Branch string `mapstructure:"branch"`
	// Scope is the path prefix under which changeset files live.
	Scope string `mapstructure:"scope"`
	// Days is the minimum-age threshold in human-readable duration syntax.
	Days string `mapstructure:"days"`
	// Format selects the output format: plain, table or yaml.
	Format string `mapstructure:"format"`
	// Jobs is the number of parallel history resolutions.
	Jobs int `mapstructure:"jobs"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Branch: "master",
		Scope:  ".changeset",
		Days:   "30days",
		Format: "plain",
		Jobs:   1,
	}
}

// Load reads the optional config file and environment. Search order when no
// file is given explicitly: .cslife.yaml in the working directory, then the
// home directory. Environment variables use the CSLIFE_ prefix; a .env file
// in the working directory is loaded first if present.
func Load(cfgFile string) (*Config, error) {
	// .env is a convenience for local use; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".cslife")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("CSLIFE")
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("branch", defaults.Branch)
	v.SetDefault("scope", defaults.Scope)
	v.SetDefault("days", defaults.Days)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("jobs", defaults.Jobs)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" {
			// An explicitly requested file must exist and parse.
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
