// Package config loads the service configuration: defaults, an
// optional spc.yaml in the working directory, and SPC_* environment
// variables, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	v *viper.Viper
}

const envPrefix = "SPC"

// New builds the configuration. A missing config file is fine;
// a malformed one is not.
func New() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("local-only", true)

	v.SetConfigName("spc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	return &Config{v: v}, nil
}

func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetString(key string) string { return c.v.GetString(key) }

// Set overrides a value, used by flag binding and tests.
func (c *Config) Set(key string, value any) { c.v.Set(key, value) }
