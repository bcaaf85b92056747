package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api"
	"github.com/spf13/viper"
)

type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

func (f OutputFormat) Validate() error {
	switch f {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}

type Config struct {
	BaseURL      string                       `mapstructure:"base_url"`
	UserAgent    string                       `mapstructure:"user_agent"`
	Output       OutputFormat                 `mapstructure:"output"`
	Username     string                       `mapstructure:"username"`
	Environments map[string]EnvironmentConfig `mapstructure:"environments"`
	v            *viper.Viper
}

type EnvironmentConfig struct {
	Extras map[string]any `mapstructure:",remain"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("base_url", api.DefaultBaseURL)
	v.SetDefault("user_agent", lib.DefaultUserAgent)
	v.SetDefault("output", string(OutputJSON))
	// Keys without a default are invisible to AutomaticEnv during Unmarshal.
	v.SetDefault("username", "")
	v.SetDefault("environments", map[string]any{
		"staging": map[string]any{"base_url": api.StagingBaseURL},
	})

	v.SetEnvPrefix(lib.EnvKeyPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func newConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}

	cfg.v = v
	return &cfg, nil
}

func NewDefaultConfig() (*Config, error) {
	return newConfigFromViper(newViper())
}

func NewConfigFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return newConfigFromViper(v)
}

func NewConfigFromReader(reader io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("reading config from reader: %w", err)
	}

	return newConfigFromViper(v)
}

// WithEnvironment returns a copy of the config where the keys of the named
// environment override the top level ones. The receiver is left untouched.
func (c *Config) WithEnvironment(env string) (*Config, error) {
	envPart, ok := c.Environments[env]
	if !ok {
		return nil, fmt.Errorf("environment '%s' not found in config", env)
	}

	newV := newViper()
	if err := newV.MergeConfigMap(c.v.AllSettings()); err != nil {
		return nil, fmt.Errorf("merging config map from global config instance: %w", err)
	}
	if err := newV.MergeConfigMap(envPart.Extras); err != nil {
		return nil, fmt.Errorf("merging environment config map: %w", err)
	}

	cfg, err := newConfigFromViper(newV)
	if err != nil {
		return nil, fmt.Errorf("loading config with environment %s: %w", env, err)
	}
	return cfg, nil
}
