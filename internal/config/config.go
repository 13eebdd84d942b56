// Package config handles runtime configuration for the cardocr commands.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wbrown/cardocr/imageutil"
)

// EnvPrefix is prepended to every environment variable, e.g. CARDOCR_WORKERS.
const EnvPrefix = "CARDOCR"

type Config struct {
	LogLevel  string // zerolog level name
	LogPretty bool   // human readable console logs instead of JSON
	Decoder   string // image decoder backend, see imageutil.Decoders
	Workers   int    // images recognized in parallel
	Dedupe    bool   // count perceptual duplicates in a batch
	Addr      string // HTTP listen address
}

// Load reads the configuration from CARDOCR_* environment variables and, when
// CARDOCR_CONFIG names a file, from that file first. Environment variables
// win over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)
	v.SetDefault("decoder", "go")
	v.SetDefault("workers", 1)
	v.SetDefault("dedupe", true)
	v.SetDefault("addr", ":8080")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		LogLevel:  v.GetString("log_level"),
		LogPretty: v.GetBool("log_pretty"),
		Decoder:   v.GetString("decoder"),
		Workers:   v.GetInt("workers"),
		Dedupe:    v.GetBool("dedupe"),
		Addr:      v.GetString("addr"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option values that the commands cannot work around.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := imageutil.Loader(c.Decoder); err != nil {
		return err
	}
	return nil
}
