// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the search-paper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the search-paper CLI.
var rootCmd = &cobra.Command{
	Use:   "search-paper",
	Short: "Scrape accepted-paper listings from conference websites",
	Long: `search-paper searches the official accepted-papers pages of academic
venues for papers matching keywords, extracts titles, authors, abstracts,
and links with heuristic pattern matching, and writes Markdown and JSON
reports. Completed runs are archived in a local SQLite database.

Venue pages are fetched sequentially with politeness delays; raw pages are
dumped under the output directory for offline inspection when extraction
comes up empty.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./search-paper.yaml or ~/.config/search-paper/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("search-paper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "search-paper"))
		}
	}

	viper.SetEnvPrefix("SEARCH_PAPER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// outputDir resolves the output directory: flag, then config, then "output".
func outputDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("output_dir"); dir != "" {
		return dir
	}
	return "output"
}

// splitCSV splits a comma-separated flag value, dropping blank entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
