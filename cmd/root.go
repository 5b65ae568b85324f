// Package cmd implements the command-line interface for wikihop.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/wikihop/cmd/find"
	"github.com/jonesrussell/wikihop/internal/config"
)

// Version is set at build time with -ldflags "-X github.com/jonesrussell/wikihop/cmd.Version=...".
var Version = "dev"

// NewRootCommand builds the wikihop command tree around v. Configuration is
// read once the command line has been parsed, so --config and --debug apply.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	var (
		cfgFile string
		debug   bool
	)

	rootCmd := &cobra.Command{
		Use:   "wikihop",
		Short: "Find the shortest chain of links between two Wikipedia articles",
		Long: `wikihop searches the live article link graph breadth-first,
fetching pages under a requests-per-minute budget.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			if debug {
				v.Set("logger.level", "debug")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml or ./config/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wikihop version %s\n", Version)
		},
	})

	rootCmd.AddCommand(find.Command(v))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to viper.
	_ = godotenv.Load()

	return NewRootCommand(viper.GetViper()).ExecuteContext(context.Background())
}

// initConfig reads in the config file and environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	config.SetDefaults(v)

	// The config file is optional unless named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return bindEnvVars(v)
}

// bindEnvVars maps short environment variable names to config keys.
func bindEnvVars(v *viper.Viper) error {
	if err := v.BindEnv("logger.level", "LOG_LEVEL", "LOGGER_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logger.encoding", "LOG_FORMAT", "LOGGER_ENCODING"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("logger.development", "APP_DEBUG", "LOGGER_DEVELOPMENT"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	return nil
}
