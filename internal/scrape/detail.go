// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/jessecu2024/search-paper/internal/fetch"
)

const (
	detailAbstractMax  = 1200
	detailWindowBytes  = 4000
	detailMinWindowLen = 200
	detailMaxSentences = 10
)

// Tier 1: abstracts embedded in inline JSON.
var detailJSONPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)"abstract"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"summary"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"description"\s*:\s*"([^"]+)"`),
}

// Tier 2: common abstract container classes.
var detailBlockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<[^>]*class="[^"]*abstract[^"]*"[^>]*>(.*?)</[^>]*>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*card-text[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*summary[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*description[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<p[^>]*class="[^"]*abstract[^"]*"[^>]*>(.*?)</p>`),
}

// Tier 3: an "Abstract" heading followed by the next markup block, in the
// heading/bracket variants seen in the wild.
var detailHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:<h[1-6][^>]*>\s*Abstract\s*</h[1-6]>\s*)(<[^>]+>.*?</[^>]+>)`),
	regexp.MustCompile(`(?is)\[\s*Abstract\s*\]\s*</[^>]+>\s*(<[^>]+>.*?</[^>]+>)`),
	regexp.MustCompile(`(?is)>\s*Abstract\s*<\s*/[^>]+>\s*(<[^>]+>.*?</[^>]+>)`),
}

var escapedNewline = regexp.MustCompile(`\\n`)

// ResolveDetailAbstract fetches a paper's detail page and applies the
// four-tier extraction strategy. Invoked only when the listing page yielded
// a URL but no abstract; returns "" when nothing validates.
func ResolveDetailAbstract(ctx context.Context, f *fetch.Fetcher, pageURL string, w io.Writer) string {
	content, ok := f.Fetch(ctx, pageURL, w)
	if !ok {
		return ""
	}

	for _, re := range detailJSONPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			clean := cleanJSONText(m[1])
			if validAbstract(clean) {
				return truncateRunes(clean, detailAbstractMax)
			}
		}
	}

	for _, re := range detailBlockPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			clean := cleanFragment(m[1])
			if validAbstract(clean) {
				return truncateRunes(clean, detailAbstractMax)
			}
		}
	}

	for _, re := range detailHeadingPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			clean := cleanFragment(m[1])
			if validAbstract(clean) {
				return truncateRunes(clean, detailAbstractMax)
			}
		}
	}

	// Last resort: a raw window after the first "abstract" occurrence,
	// reduced to its leading sentences.
	if pos := strings.Index(strings.ToLower(content), "abstract"); pos >= 0 {
		end := pos + detailWindowBytes
		if end > len(content) {
			end = len(content)
		}
		clean := cleanFragment(content[pos:end])
		if len(clean) > detailMinWindowLen {
			parts := splitSentences(clean)
			if len(parts) > detailMaxSentences {
				parts = parts[:detailMaxSentences]
			}
			joined := strings.Join(parts, " ")
			if validAbstract(joined) {
				return truncateRunes(joined, detailAbstractMax)
			}
		}
	}
	return ""
}

// cleanJSONText normalizes a JSON string value: escaped newlines become
// spaces, entities are unescaped, whitespace collapses.
func cleanJSONText(s string) string {
	s = escapedNewline.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
