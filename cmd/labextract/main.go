// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labextract CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the labextract CLI.
var rootCmd = &cobra.Command{
	Use:   "labextract",
	Short: "Extract lab measurements from hospital report drops",
	Long: `labextract consolidates clinical measurement records from two kinds of
hospital information system exports: PDF reports, converted to HTML with
pdf2htmlEX and parsed by grammar, and semicolon-delimited CSV exports.
Extracted records are validated and merged into a single JSON store
deduplicated by date and measurement name.

Each operation is a subcommand: process runs the extraction pipeline,
index rebuilds the SQLite query index from the store, and query searches
the index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labextract.yaml or ~/.config/labextract/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labextract"))
		}
	}

	viper.SetEnvPrefix("LABEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// flagOrConfig resolves a string setting: an explicit flag wins, then the
// config file, then the built-in default.
func flagOrConfig(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
