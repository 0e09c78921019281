// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jessecu2024/search-paper/internal/debugdump"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze dumped listing pages for extraction markers",
	Long: `Analyze inspects the debug_*.html files under the output directory and
reports link counts and author/abstract marker counts for each. Use it to
understand why a venue produced no results and to adapt the extraction
patterns to its markup.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("output-dir", "", "directory holding debug_*.html dumps (default \"output\")")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("Debug file analyzer")
	fmt.Println("========================================")

	_, err := debugdump.Analyze(outputDir(cmd), os.Stdout)
	return err
}
