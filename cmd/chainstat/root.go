package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	jsonOut    bool
	quiet      bool

	cfg    Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "chainstat",
	Short: "Count words with a chained hash table",
	Long: `chainstat counts word frequencies in text files. Words are hashed to
64-bit keys and stored in a chained hash table; the stats command reports how
the table's buckets and chains ended up.

Settings are read from an optional TOML file (--config) and can be overridden
by flags.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cfg, err = loadConfig(configPath); err != nil {
			return
		}

		if err = cfg.applyFlags(cmd.Flags()); err != nil {
			return
		}

		logger, err = newLogger(cfg.LogLevel)
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	defaults := defaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.Int("buckets", defaults.Buckets, "Initial number of hash table buckets")
	flags.String("hash", defaults.Hash, "Key hash: fnv or xxhash")
	flags.String("encoding", defaults.Encoding, "Input encoding: utf-8, latin1 or windows-1252")
	flags.String("log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
	flags.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints to stdout unless in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(rootCmd.OutOrStdout(), format, args...)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(rootCmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
