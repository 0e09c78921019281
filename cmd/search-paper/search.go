// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jessecu2024/search-paper/internal/debugdump"
	"github.com/jessecu2024/search-paper/internal/prompt"
	"github.com/jessecu2024/search-paper/internal/report"
	"github.com/jessecu2024/search-paper/internal/scrape"
	"github.com/jessecu2024/search-paper/internal/store"
	"github.com/jessecu2024/search-paper/internal/venues"
	"github.com/jessecu2024/search-paper/pkg/types"
)

const (
	defaultTimeout      = 20 * time.Second
	defaultListingDelay = 1200 * time.Millisecond
	defaultDetailDelay  = 800 * time.Millisecond
	dbFile              = "search-paper.db"

	// Venue sites reject obvious bots, so the fetcher presents as a
	// desktop browser.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/123.0 Safari/537.36"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search venue listing pages for papers matching keywords",
	Long: `Search fetches the accepted-papers pages of the selected venues and
years, extracts records matching the keywords, and writes Markdown and JSON
reports to the output directory.

Without --non-interactive, missing venues, years, or keywords are collected
through an interactive menu and the search is confirmed before it starts.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("venues", "", "venue IDs or quick picks, comma-separated (e.g., ICML,NeurIPS or ai)")
	searchCmd.Flags().String("years", "", "years, comma-separated (e.g., 2023,2024)")
	searchCmd.Flags().String("keywords", "", "keywords, comma-separated (e.g., unlearning,federated learning)")
	searchCmd.Flags().Bool("non-interactive", false, "fail instead of prompting for missing selections")
	searchCmd.Flags().String("output-dir", "", "directory for reports, debug dumps, and the run archive (default \"output\")")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 20s)")
	searchCmd.Flags().Duration("delay", 0, "politeness delay between listing fetches (default 1.2s)")
	searchCmd.Flags().String("venues-file", "", "YAML file with extra or overriding venue entries")

	rootCmd.AddCommand(searchCmd)
}

func scrapeConfig(cmd *cobra.Command) types.ScrapeConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = viper.GetDuration("listing_delay")
	}
	if delay == 0 {
		delay = defaultListingDelay
	}
	detailDelay := viper.GetDuration("detail_delay")
	if detailDelay == 0 {
		detailDelay = defaultDetailDelay
	}
	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	venuesFile, _ := cmd.Flags().GetString("venues-file")
	if venuesFile == "" {
		venuesFile = viper.GetString("venues_file")
	}

	return types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		MaxRetries:     viper.GetInt("max_retries"),
		RetryBaseDelay: viper.GetDuration("retry_base_delay"),
		ListingDelay:   delay,
		DetailDelay:    detailDelay,
		OutputDir:      outputDir(cmd),
		VenuesFile:     venuesFile,
	}
}

func buildRegistry(cfg types.ScrapeConfig) (*venues.Registry, error) {
	registry := venues.Builtin()
	if cfg.VenuesFile == "" {
		return registry, nil
	}
	return registry.WithFile(cfg.VenuesFile)
}

// expandVenueTokens resolves quick picks ("ai", "cv", "nlp", "all") in a
// venue flag value; plain IDs pass through.
func expandVenueTokens(registry *venues.Registry, tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		if ids := registry.ExpandPick(tok); len(ids) > 0 {
			out = append(out, ids...)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := scrapeConfig(cmd)
	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	venuesFlag, _ := cmd.Flags().GetString("venues")
	yearsFlag, _ := cmd.Flags().GetString("years")
	keywordsFlag, _ := cmd.Flags().GetString("keywords")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

	sel := prompt.Selection{
		Venues:   expandVenueTokens(registry, splitCSV(venuesFlag)),
		Years:    splitCSV(yearsFlag),
		Keywords: splitCSV(keywordsFlag),
	}

	var prompter *prompt.Prompter
	if nonInteractive {
		if len(sel.Venues) == 0 || len(sel.Years) == 0 || len(sel.Keywords) == 0 {
			return fmt.Errorf("non-interactive mode requires --venues, --years, and --keywords")
		}
	} else {
		prompter = prompt.New(os.Stdin, os.Stdout, registry)
		if len(sel.Venues) == 0 || len(sel.Years) == 0 || len(sel.Keywords) == 0 {
			if sel, err = prompter.Select(); err != nil {
				return err
			}
		}
		if !prompter.Confirm(sel) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	fmt.Println("\n=== Run Search ===")
	fmt.Printf("Venues:   %s\n", strings.Join(sel.Venues, ", "))
	fmt.Printf("Years:    %s\n", strings.Join(sel.Years, ", "))
	fmt.Printf("Keywords: %s\n", strings.Join(sel.Keywords, ", "))
	fmt.Println(strings.Repeat("=", 60))

	started := time.Now()
	scraper := scrape.New(registry, cfg)
	out, err := scraper.Run(context.Background(), sel.Venues, sel.Years, sel.Keywords, os.Stdout)
	if err != nil {
		return err
	}

	if len(out.Papers) == 0 {
		fmt.Println("\nNo results.")
		fmt.Println("Tips:")
		fmt.Println("  1) Try broader keywords;")
		fmt.Println("  2) Expand year range;")
		fmt.Printf("  3) Inspect %s/debug_*.html to adapt patterns;\n", cfg.OutputDir)
		fmt.Println("  4) Manually verify official pages.")
		if prompter != nil && prompter.YesNo("\nRun debug analyzer now? (y/n): ") {
			if _, err := debugdump.Analyze(cfg.OutputDir, os.Stdout); err != nil {
				return err
			}
		}
		fmt.Println("\nDone. Found 0 papers.")
		return nil
	}

	prettyPrint(out.Papers)

	rep := report.New(out.Papers, sel.Venues, sel.Years, sel.Keywords)
	if _, _, err := rep.Save(cfg.OutputDir, os.Stdout); err != nil {
		return err
	}

	archiveRun(cfg, started, sel, out)

	fmt.Printf("\nDone. Found %d papers.\n", len(out.Papers))
	return nil
}

// archiveRun records the run in the SQLite archive. Archive trouble is a
// warning, never a run failure.
func archiveRun(cfg types.ScrapeConfig, started time.Time, sel prompt.Selection, out scrape.Output) {
	s, err := store.Open(types.StoreConfig{
		DatabasePath: filepath.Join(cfg.OutputDir, dbFile),
	})
	if err != nil {
		fmt.Printf("warning: run archive unavailable: %v\n", err)
		return
	}
	defer s.Close()

	if _, err := s.SaveRun(context.Background(), store.RunRecord{
		StartedAt:   started,
		Venues:      sel.Venues,
		Years:       sel.Years,
		Keywords:    sel.Keywords,
		DupsRemoved: out.DupsRemoved,
		Papers:      out.Papers,
	}); err != nil {
		fmt.Printf("warning: archiving run failed: %v\n", err)
	}
}

func prettyPrint(papers []types.PaperRecord) {
	fmt.Println("\n=== Papers ===")
	for i, p := range papers {
		fmt.Printf("\n  %d. %s\n", i+1, p.Title)
		fmt.Printf("     Venue: %s %s\n", p.Venue, p.Year)
		if len(p.Authors) > 0 {
			names := p.Authors
			suffix := ""
			if len(names) > 3 {
				suffix = fmt.Sprintf(" and %d more", len(names)-3)
				names = names[:3]
			}
			fmt.Printf("     Authors: %s%s\n", strings.Join(names, ", "), suffix)
		}
		if p.URL != "" {
			fmt.Printf("     URL: %s\n", p.URL)
		}
		if p.Abstract != "" {
			preview := p.Abstract
			if utf8.RuneCountInString(preview) > 100 {
				preview = string([]rune(preview)[:100]) + "..."
			}
			fmt.Printf("     Abstract: %s\n", preview)
		}
	}
}
