package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/AnotherFullstackDev/robotoff-ctl/cmd/robotoffctl/insights"
	"github.com/AnotherFullstackDev/robotoff-ctl/cmd/robotoffctl/logo"
	"github.com/AnotherFullstackDev/robotoff-ctl/cmd/robotoffctl/questions"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/config"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/keyring"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./robotoffctl.yaml"

func NewRootCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	var configPath, env, output string
	var debug bool

	rootCmd := &cobra.Command{
		Use:           "robotoffctl",
		Short:         "Robotoffctl is a CLI tool for the Open Food Facts Robotoff API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debug)

			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if env != "" {
				if cfg, err = cfg.WithEnvironment(env); err != nil {
					return fmt.Errorf("loading environment specific config: %w", err)
				}
			}
			if output != "" {
				format := config.OutputFormat(output)
				if err := format.Validate(); err != nil {
					return fmt.Errorf("checking --output: %w", err)
				}
				cfg.Output = format
			}

			locator.Config = cfg
			locator.Debug = debug
			if locator.CredentialsStorage == nil {
				if storage, err := keyring.NewService(lib.KeyringServiceName); err != nil {
					slog.Debug("keyring is not available, credentials will not be remembered", "error", err)
				} else {
					locator.CredentialsStorage = storage
				}
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "Environment from the config to use (e.g. staging)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: json or yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log every HTTP request and response")

	rootCmd.AddCommand(
		insights.NewInsightsCmd(locator),
		questions.NewQuestionsCmd(locator),
		logo.NewLogoCmd(locator),
	)

	return rootCmd
}

// loadConfig reads path when it exists. A missing default file is not an error,
// a missing file the user asked for is.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return config.NewDefaultConfig()
		}
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}
	return config.NewConfigFromPath(path)
}

func setupLogger(debug bool) {
	level := slog.LevelWarn
	if raw := os.Getenv(lib.LogLevelEnv); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToUpper(raw))); err != nil {
			slog.Warn("invalid log level, falling back to warn", "value", raw)
		}
	}
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
