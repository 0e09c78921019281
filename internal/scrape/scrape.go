// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jessecu2024/search-paper/internal/debugdump"
	"github.com/jessecu2024/search-paper/internal/fetch"
	"github.com/jessecu2024/search-paper/internal/venues"
	"github.com/jessecu2024/search-paper/pkg/types"
)

// Scraper drives the listing-page pipeline for one search request.
// Execution is strictly sequential: venues in request order, years within a
// venue, keywords within a year, one HTTP request in flight at a time with
// politeness pauses between page fetches.
type Scraper struct {
	fetcher  *fetch.Fetcher
	registry *venues.Registry
	cfg      types.ScrapeConfig
}

// New builds a Scraper over an immutable venue registry.
func New(registry *venues.Registry, cfg types.ScrapeConfig) *Scraper {
	return &Scraper{
		fetcher:  fetch.New(cfg),
		registry: registry,
		cfg:      cfg,
	}
}

// Output holds the aggregated, deduplicated records of a run.
type Output struct {
	Papers      []types.PaperRecord
	DupsRemoved int
}

// Run searches every (venue, year) pair and returns the deduplicated
// records. Per-venue failures degrade to empty results; only cancellation
// ends the run early, returning what was collected alongside ctx.Err().
func (s *Scraper) Run(ctx context.Context, venueIDs, years, keywords []string, w io.Writer) (Output, error) {
	if len(venueIDs) == 0 || len(years) == 0 || len(keywords) == 0 {
		return Output{}, fmt.Errorf("search needs venues, years, and keywords")
	}

	var all []types.PaperRecord
	for _, vid := range venueIDs {
		for _, year := range years {
			if err := ctx.Err(); err != nil {
				uniq, removed := Deduplicate(all)
				return Output{Papers: uniq, DupsRemoved: removed}, err
			}
			all = append(all, s.searchVenueYear(ctx, vid, year, keywords, w)...)
		}
	}

	fmt.Fprintf(w, "\nTotal found: %d\n", len(all))
	uniq, removed := Deduplicate(all)
	fmt.Fprintf(w, "After dedup: %d\n", len(uniq))
	return Output{Papers: uniq, DupsRemoved: removed}, nil
}

// searchVenueYear fetches one venue's pages for one year. Keyword-query
// endpoints are preferred, one fetch per keyword; the full listing page is
// the fallback when there is no endpoint or the queries found nothing.
func (s *Scraper) searchVenueYear(ctx context.Context, venueID, year string, keywords []string, w io.Writer) []types.PaperRecord {
	v, ok := s.registry.Lookup(venueID)
	if !ok {
		fmt.Fprintf(w, "  error: unknown venue %s\n", venueID)
		return nil
	}
	if !v.KnowsYear(year) {
		fmt.Fprintf(w, "  Note: %s %s may not be available (still trying).\n", v.ID, year)
	}
	fmt.Fprintf(w, "  Searching %s %s ...\n", v.ID, year)

	var results []types.PaperRecord
	if v.HasSearch() {
		for _, kw := range keywords {
			if ctx.Err() != nil {
				return results
			}
			u := v.SearchPageURL(year, kw)
			fmt.Fprintf(w, "    Query: %s -> %s\n", kw, u)
			if content, ok := s.fetcher.Fetch(ctx, u, w); ok {
				results = append(results, s.extractPapers(ctx, content, v, year, []string{kw}, w)...)
			}
			s.pause(ctx, s.cfg.ListingDelay)
		}
	}

	if len(results) == 0 {
		u := v.ListingPageURL(year)
		fmt.Fprintf(w, "    All-papers page: %s\n", u)
		if content, ok := s.fetcher.Fetch(ctx, u, w); ok {
			results = append(results, s.extractPapers(ctx, content, v, year, keywords, w)...)
		}
		s.pause(ctx, s.cfg.ListingDelay)
	}

	fmt.Fprintf(w, "    Found %d for %s %s\n", len(results), v.ID, year)
	return results
}

// extractPapers runs detection and field extraction over one fetched page.
func (s *Scraper) extractPapers(ctx context.Context, content string, v venues.Venue, year string, keywords []string, w io.Writer) []types.PaperRecord {
	if content == "" {
		return nil
	}
	debugdump.Write(s.cfg.OutputDir, v.ID, year, content, w)

	candidates := detectCandidates(content, newKeywordSet(keywords))
	fmt.Fprintf(w, "    Candidates: %d\n", len(candidates))

	lines := strings.Split(content, "\n")
	base := v.Base(year)
	seen := make(map[string]bool)

	var papers []types.PaperRecord
	for _, c := range candidates {
		// Overlapping fallback patterns can yield the same title twice.
		key := dedupKey(c.Title, v.ID, year)
		if seen[key] {
			continue
		}
		seen[key] = true

		authors := extractAuthors(lines, c.Line, c.Title)
		abstract := extractAbstract(lines, c.Line)
		pageURL := extractURL(content, c.Title, c.RawHTML, base)

		if abstract == "" && pageURL != "" {
			fmt.Fprintln(w, "       No abstract on list page. Fetching from detail page ...")
			if detail := ResolveDetailAbstract(ctx, s.fetcher, pageURL, w); detail != "" {
				abstract = detail
			}
			s.pause(ctx, s.cfg.DetailDelay)
		}

		p := types.PaperRecord{
			Title:    c.Title,
			Authors:  authors,
			Abstract: abstract,
			Venue:    v.ID,
			Year:     year,
			URL:      pageURL,
			Source:   v.ID + " Official Website",
		}
		papers = append(papers, p)
		logRecord(w, p)
	}
	return papers
}

// pause sleeps for d unless it is zero or the context ends first.
func (s *Scraper) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func logRecord(w io.Writer, p types.PaperRecord) {
	fmt.Fprintf(w, "    OK: %s\n", truncateRunes(p.Title, 80))
	if len(p.Authors) > 0 {
		preview := p.Authors
		suffix := ""
		if len(preview) > 3 {
			preview = preview[:3]
			suffix = "..."
		}
		fmt.Fprintf(w, "       Authors: %s%s\n", strings.Join(preview, ", "), suffix)
	} else {
		fmt.Fprintln(w, "       Authors: (not found)")
	}
	if p.URL != "" {
		fmt.Fprintf(w, "       URL: %s\n", p.URL)
	} else {
		fmt.Fprintln(w, "       URL: (not found)")
	}
	if p.Abstract != "" {
		fmt.Fprintf(w, "       Abstract: %s\n", truncateRunes(p.Abstract, 80))
	} else {
		fmt.Fprintln(w, "       Abstract: (not found)")
	}
}
