// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jessecu2024/search-paper/internal/venues"
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "List the known venues grouped by category",
	Long: `Venues prints the venue registry: every known conference and journal
with its identifier, full name, and known years, grouped by category.
Entries from a --venues-file are merged in before printing.`,
	RunE: runVenues,
}

func init() {
	venuesCmd.Flags().String("venues-file", "", "YAML file with extra or overriding venue entries")

	rootCmd.AddCommand(venuesCmd)
}

func runVenues(cmd *cobra.Command, args []string) error {
	registry := venues.Builtin()

	venuesFile, _ := cmd.Flags().GetString("venues-file")
	if venuesFile == "" {
		venuesFile = viper.GetString("venues_file")
	}
	if venuesFile != "" {
		var err error
		if registry, err = registry.WithFile(venuesFile); err != nil {
			return err
		}
	}

	for _, cat := range registry.Categories() {
		fmt.Printf("%s:\n", cat)
		for _, v := range registry.ByCategory(cat) {
			years := strings.Join(v.Years, ", ")
			if years == "" {
				years = "unknown years"
			}
			fmt.Printf("  %-8s %s (%s)\n", v.ID, v.Name, years)
		}
		fmt.Println()
	}

	fmt.Println("Quick Picks:")
	fmt.Println("  'ai'  -> ICML, NeurIPS, ICLR, AAAI, IJCAI")
	fmt.Println("  'cv'  -> CVPR, ICCV, ECCV")
	fmt.Println("  'nlp' -> ACL, EMNLP, NAACL")
	fmt.Println("  'all' -> All above")
	return nil
}
