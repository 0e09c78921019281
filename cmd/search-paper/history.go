// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jessecu2024/search-paper/internal/store"
	"github.com/jessecu2024/search-paper/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived search runs",
	Long: `History lists past search runs from the SQLite archive, newest first:
when they ran, which venues, years, and keywords, and how many papers they
found. Use --id to print the papers of one archived run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("output-dir", "", "directory holding the run archive (default \"output\")")
	historyCmd.Flags().String("venue", "", "only runs that found papers from this venue")
	historyCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")
	historyCmd.Flags().Int64("id", 0, "print the papers of this archived run")

	rootCmd.AddCommand(historyCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath := viper.GetString("database_path")
	if dbPath == "" {
		dbPath = filepath.Join(outputDir(cmd), dbFile)
	}
	return store.Open(types.StoreConfig{DatabasePath: dbPath})
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if runID, _ := cmd.Flags().GetInt64("id"); runID != 0 {
		return showRun(s, runID)
	}

	venue, _ := cmd.Flags().GetString("venue")
	limit, _ := cmd.Flags().GetInt("limit")

	runs, err := s.ListRuns(context.Background(), venue, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Printf("%-4s  %-19s  %-6s  %-24s  %-16s  %s\n",
		"ID", "Started", "Papers", "Venues", "Years", "Keywords")
	fmt.Println(strings.Repeat("-", 96))
	for _, r := range runs {
		fmt.Printf("%-4d  %-19s  %-6d  %-24s  %-16s  %s\n",
			r.ID,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			r.TotalFound,
			clip(strings.Join(r.Venues, ","), 24),
			clip(strings.Join(r.Years, ","), 16),
			strings.Join(r.Keywords, ","))
	}
	fmt.Printf("\n%d runs\n", len(runs))
	return nil
}

func showRun(s *store.Store, runID int64) error {
	papers, err := s.RunPapers(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Printf("Run %d has no archived papers.\n", runID)
		return nil
	}
	prettyPrint(papers)
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
