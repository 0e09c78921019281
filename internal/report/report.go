// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes search results to Markdown and JSON files whose
// names encode the search conditions, so a directory of reports stays
// self-describing.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jessecu2024/search-paper/pkg/types"
)

// Report holds one run's results together with the conditions that
// produced them.
type Report struct {
	Venues      []string
	Years       []string
	Keywords    []string
	Papers      []types.PaperRecord
	GeneratedAt time.Time
}

// New builds a report stamped with the current time.
func New(papers []types.PaperRecord, venues, years, keywords []string) Report {
	return Report{
		Venues:      venues,
		Years:       years,
		Keywords:    keywords,
		Papers:      papers,
		GeneratedAt: time.Now(),
	}
}

var (
	punctRun   = regexp.MustCompile(`[,+/\\]+`)
	unsafeRun  = regexp.MustCompile(`[^A-Za-z0-9._\-]+`)
	underscore = regexp.MustCompile(`_+`)
)

// safeToken reduces a free-form condition value to a filename-safe token.
func safeToken(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	s = punctRun.ReplaceAllString(s, "-")
	s = unsafeRun.ReplaceAllString(s, "_")
	s = strings.Trim(underscore.ReplaceAllString(s, "_"), "_")
	if s == "" {
		return "NA"
	}
	return s
}

func joinTokens(values []string) string {
	var toks []string
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		toks = append(toks, safeToken(v))
	}
	if len(toks) == 0 {
		return "NA"
	}
	return strings.Join(toks, "-")
}

// Basename returns the report filename stem: keywords+venues+years with a
// timestamp suffix against accidental overwrites.
func (r Report) Basename() string {
	return fmt.Sprintf("%s+%s+%s__%s",
		joinTokens(r.Keywords), joinTokens(r.Venues), joinTokens(r.Years),
		r.GeneratedAt.Format("20060102_150405"))
}

func (r Report) venueStats() map[string]int {
	stats := make(map[string]int)
	for _, p := range r.Papers {
		stats[p.Venue]++
	}
	return stats
}

func (r Report) yearStats() map[string]int {
	stats := make(map[string]int)
	for _, p := range r.Papers {
		stats[p.Year]++
	}
	return stats
}

func sortedKeys(m map[string]int, descending bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if descending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	return keys
}

// Markdown renders the report document: a header with the search
// conditions, per-venue and per-year counts, then the papers grouped by
// venue.
func (r Report) Markdown() string {
	venueStats := r.venueStats()
	yearStats := r.yearStats()

	lines := []string{
		"# Paper Search Report",
		"",
		fmt.Sprintf("**Generated at**: %s", r.GeneratedAt.Format("2006-01-02 15:04:05")),
		fmt.Sprintf("**Venues**: %s", strings.Join(r.Venues, ", ")),
		fmt.Sprintf("**Years**: %s", strings.Join(r.Years, ", ")),
		fmt.Sprintf("**Keywords**: %s", strings.Join(r.Keywords, ", ")),
		fmt.Sprintf("**Total Papers**: %d", len(r.Papers)),
		"",
		"## Stats",
		"",
		"### By Venue",
		"",
	}
	for _, v := range sortedKeys(venueStats, false) {
		lines = append(lines, fmt.Sprintf("- **%s**: %d", v, venueStats[v]))
	}

	lines = append(lines, "", "### By Year", "")
	for _, y := range sortedKeys(yearStats, true) {
		lines = append(lines, fmt.Sprintf("- **%s**: %d", y, yearStats[y]))
	}

	lines = append(lines, "", "## Papers", "")
	for _, v := range sortedKeys(venueStats, false) {
		var group []types.PaperRecord
		for _, p := range r.Papers {
			if p.Venue == v {
				group = append(group, p)
			}
		}
		lines = append(lines, fmt.Sprintf("### %s (%d)", v, len(group)), "")
		for i, p := range group {
			lines = append(lines, fmt.Sprintf("#### %d. %s", i+1, p.Title), "")
			lines = append(lines, fmt.Sprintf("**Venue**: %s %s", p.Venue, p.Year))
			if len(p.Authors) > 0 {
				lines = append(lines, fmt.Sprintf("**Authors**: %s", strings.Join(p.Authors, ", ")))
			}
			if p.URL != "" {
				lines = append(lines, fmt.Sprintf("**URL**: [%s](%s)", p.URL, p.URL))
			}
			if p.Abstract != "" {
				lines = append(lines, fmt.Sprintf("**Abstract**: %s", p.Abstract))
			}
			lines = append(lines, "", "---", "")
		}
	}
	return strings.Join(lines, "\n")
}

// jsonPayload is the JSON report shape. Field names are part of the
// on-disk format.
type jsonPayload struct {
	GeneratedAt string              `json:"generated_at"`
	Conferences []string            `json:"conferences"`
	Years       []string            `json:"years"`
	Keywords    []string            `json:"keywords"`
	TotalPapers int                 `json:"total_papers"`
	VenueStats  map[string]int      `json:"venue_stats"`
	YearStats   map[string]int      `json:"year_stats"`
	Papers      []types.PaperRecord `json:"papers"`
}

// JSON renders the report as indented JSON.
func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(jsonPayload{
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Conferences: r.Venues,
		Years:       r.Years,
		Keywords:    r.Keywords,
		TotalPapers: len(r.Papers),
		VenueStats:  r.venueStats(),
		YearStats:   r.yearStats(),
		Papers:      r.Papers,
	}, "", "  ")
}

// Save writes the Markdown and JSON files into dir, creating it if
// needed, and returns their paths.
func (r Report) Save(dir string, w io.Writer) (mdPath, jsonPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating report directory: %w", err)
	}

	base := r.Basename()
	mdPath = filepath.Join(dir, base+".md")
	jsonPath = filepath.Join(dir, base+".json")

	if err := os.WriteFile(mdPath, []byte(r.Markdown()), 0o644); err != nil {
		return "", "", fmt.Errorf("writing markdown report: %w", err)
	}
	data, err := r.JSON()
	if err != nil {
		return "", "", fmt.Errorf("encoding JSON report: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing JSON report: %w", err)
	}

	fmt.Fprintln(w, "\nReport saved:")
	fmt.Fprintf(w, "  Markdown: %s\n", mdPath)
	fmt.Fprintf(w, "  JSON:     %s\n", jsonPath)
	return mdPath, jsonPath, nil
}
