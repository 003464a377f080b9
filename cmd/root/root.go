// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/accountbook/internal/config"
	"fjacquet/accountbook/internal/container"
	"fjacquet/accountbook/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the loaded configuration, set before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired services, set before any subcommand runs
	AppContainer *container.Container

	// ConfigFile overrides the config.yaml search path
	ConfigFile string
	// LogLevel overrides log.level when set
	LogLevel string
	// LogFormat overrides log.format when set
	LogFormat string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "accountbook",
		Short: "A personal finance ledger with multi-currency entry and budgets.",
		Long: `accountbook is a personal finance ledger. It records income and expense
transactions in several currencies, converting them to KRW with the Korea
Eximbank daily rates, and tracks monthly and per-category budgets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Welcome to accountbook!")
			fmt.Fprintln(cmd.OutOrStdout(), "Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			Teardown()
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.accountbook, .accountbook and .)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&LogFormat, "log-format", "", "Log format (text, json)")
}

// Setup loads configuration and builds the container.
func Setup() error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfigFromFile(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if LogFormat != "" {
		cfg.Log.Format = LogFormat
	}
	Log = config.ConfigureLoggingFromConfig(cfg)

	c, err := container.NewContainer(cfg, container.WithLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	return nil
}

// Teardown releases the container.
func Teardown() {
	if AppContainer == nil {
		return
	}
	if err := AppContainer.Close(); err != nil {
		Log.WithError(err).Warn("Failed to close storage")
	}
	AppContainer = nil
}

// GetContainer returns the container or an error when Setup has not run.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return AppContainer, nil
}
