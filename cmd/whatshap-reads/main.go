// Package main provides the whatshap-reads command-line tool for inspecting
// read stores.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "whatshap-reads",
		Short: "Inspect a phasing read store",
		Long: "whatshap-reads inspects DuckDB read stores: the reads, their allele\n" +
			"observations at variant sites, and the positions of interest they span.",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the read store (default: store.path from config)")
	viper.BindPFlag("store.path", cmd.PersistentFlags().Lookup("store"))

	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.whatshap-reads.yaml if present.
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("find home directory: %w", err)
	}

	viper.SetConfigName(".whatshap-reads")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds the CLI logger. Diagnostics go to stderr so command output
// stays clean on stdout.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// resolveStorePath returns the configured store path or an error telling the
// user how to set it.
func resolveStorePath() (string, error) {
	path := viper.GetString("store.path")
	if path == "" {
		return "", fmt.Errorf("no store path given; use --store or `whatshap-reads config set store.path <path>`")
	}
	return path, nil
}
