package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "credit",
		Short: "💳 Alternative credit scoring from everyday income",
		Long: `the-credit-must-flow: scores informal-sector businesses from their recent income
transactions, unlocks micro-loan offers as the score improves, and explains
what is helping or hurting along the way.

Load statements with --statement (OFX, QFX, CSV, or JSON), or use the demo
history.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/credit/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.StringSlice("statement", nil, "statement files to load (.ofx, .qfx, .csv, .json)")
	flags.Bool("demo", false, "include the demo history even when statements are given")
	flags.String("as-of", "", "evaluate the score as of this date (YYYY-MM-DD)")

	_ = viper.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("history.files", flags.Lookup("statement"))
	_ = viper.BindPFlag("history.demo", flags.Lookup("demo"))
	_ = viper.BindPFlag("history.as_of", flags.Lookup("as-of"))

	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, userErr.UserMessage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/credit", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CREDIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return setupLogging()
}

func setupLogging() error {
	level := strings.ToLower(viper.GetString("logging.level"))
	format := strings.ToLower(viper.GetString("logging.format"))

	if err := common.SetupLogger(level, format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "credit version %s\n", version)
			return err
		},
	}
}
