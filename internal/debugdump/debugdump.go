// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debugdump persists raw fetched listing pages for offline
// inspection and analyzes dumped pages for extraction markers. The core
// never reads these files back; they exist so a human can adapt the
// heuristics when a venue's markup defeats them.
package debugdump

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Path returns the dump file path for a venue/year pair.
func Path(dir, venue, year string) string {
	return filepath.Join(dir, fmt.Sprintf("debug_%s_%s.html", venue, year))
}

// Write persists content verbatim as the debug file for venue/year.
// Failures are warnings on w, never errors: dumping is a side channel.
func Write(dir, venue, year, content string, w io.Writer) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(w, "    warning: cannot create debug dir: %v\n", err)
		return
	}
	path := Path(dir, venue, year)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "    warning: cannot write debug file: %v\n", err)
		return
	}
	fmt.Fprintf(w, "    Debug file: %s\n", path)
}

// Summary holds marker counts for one dumped page.
type Summary struct {
	File            string
	Size            int
	Links           int
	AuthorMarkers   int
	AbstractMarkers int
}

// Class-attribute fragments and JSON keys that the extraction tiers look
// for. High counts mean the page should extract well; zeros explain an
// empty result.
var (
	authorClassMarkers   = []string{"author", "presenter", "name", "card-subtitle"}
	abstractClassMarkers = []string{"abstract", "summary", "description", "card-text"}
	authorJSONKeys       = []string{`"authors":`, `"presenter":`}
	abstractJSONKeys     = []string{`"abstract":`, `"summary":`}
)

// Analyze inspects every debug_*.html file under dir and reports link and
// marker counts. Per-file parse failures are reported and skipped.
func Analyze(dir string, w io.Writer) ([]Summary, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "debug_*.html"))
	if err != nil {
		return nil, fmt.Errorf("listing debug files: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(w, "No debug files found.")
		return nil, nil
	}
	sort.Strings(matches)
	fmt.Fprintf(w, "Found %d debug files.\n", len(matches))

	var summaries []Summary
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "analyze failed %s: %v\n", filepath.Base(path), err)
			continue
		}
		s, err := analyzePage(string(data))
		if err != nil {
			fmt.Fprintf(w, "analyze failed %s: %v\n", filepath.Base(path), err)
			continue
		}
		s.File = filepath.Base(path)

		fmt.Fprintf(w, "\n--- %s ---\n", s.File)
		fmt.Fprintf(w, "Size: %d chars\n", s.Size)
		fmt.Fprintf(w, "Links: %d, author-tags: %d, abstract-tags: %d\n",
			s.Links, s.AuthorMarkers, s.AbstractMarkers)
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func analyzePage(content string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return Summary{}, fmt.Errorf("parsing HTML: %w", err)
	}

	s := Summary{Size: len(content)}
	s.Links = doc.Find("a[href]").Length()

	doc.Find("[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		class = strings.ToLower(class)
		for _, m := range authorClassMarkers {
			if strings.Contains(class, m) {
				s.AuthorMarkers++
				break
			}
		}
		for _, m := range abstractClassMarkers {
			if strings.Contains(class, m) {
				s.AbstractMarkers++
				break
			}
		}
	})

	low := strings.ToLower(content)
	for _, k := range authorJSONKeys {
		s.AuthorMarkers += strings.Count(low, k)
	}
	for _, k := range abstractJSONKeys {
		s.AbstractMarkers += strings.Count(low, k)
	}
	return s, nil
}
