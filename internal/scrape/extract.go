// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	maxAuthors          = 8
	listingAbstractMax  = 600
	titleAnchorMaxRunes = 80
	proximityBytes      = 500
)

// authorPatterns are tried in order; the first pattern producing any match
// wins and its matches alone are split into names.
var authorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<[^>]*class="[^"]*author[^"]*"[^>]*>(.*?)</[^>]*>`),
	regexp.MustCompile(`(?is)<span[^>]*class="[^"]*presenter[^"]*"[^>]*>(.*?)</span>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*card-subtitle[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)(?:Authors?|By|Presented by)\s*[:\-]\s*(.*?)(?:<|\n|$)`),
	regexp.MustCompile(`(?is)"authors?"\s*:\s*\[(.*?)\]`),
	regexp.MustCompile(`(?is)"presenter"\s*:\s*"([^"]+)"`),
}

// authorSeparators split a matched author blob into individual names.
// Order matters: ", and" before bare "and" before plain commas.
var authorSeparators = []*regexp.Regexp{
	regexp.MustCompile(`,\s+and\s+`),
	regexp.MustCompile(`\s+and\s+`),
	regexp.MustCompile(`,\s*`),
	regexp.MustCompile(`;\s*`),
	regexp.MustCompile(`\|\s*`),
	regexp.MustCompile(`\n\s*`),
}

// capitalizedName is the last resort: two or three capitalized words.
var capitalizedName = regexp.MustCompile(`\b([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,}(?:\s+[A-Z][a-z]{2,})?)\b`)

// extractAuthors derives author names for the candidate at line from a
// -5/+15 line window around it. Names are case-insensitively unique and
// capped at 8. The capitalized-name fallback skips matches that are part of
// the title itself, or every capitalized title word would become an author.
func extractAuthors(lines []string, line int, title string) []string {
	context := contextWindow(lines, line, authorLinesBefore, authorLinesAfter)

	var authors []string
	for _, re := range authorPatterns {
		for _, m := range re.FindAllStringSubmatch(context, -1) {
			clean := cleanFragment(m[1])
			if len(clean) < 3 {
				continue
			}
			parts := []string{clean}
			for _, sep := range authorSeparators {
				var tmp []string
				for _, p := range parts {
					tmp = append(tmp, sep.Split(p, -1)...)
				}
				parts = tmp
			}
			for _, p := range parts {
				p = strings.Trim(strings.TrimSpace(p), `"'`)
				if validAuthorName(p) {
					authors = append(authors, p)
				}
			}
		}
		if len(authors) > 0 {
			break
		}
	}
	if len(authors) == 0 {
		for _, m := range capitalizedName.FindAllString(context, -1) {
			if strings.Contains(title, m) {
				continue
			}
			if validAuthorName(m) {
				authors = append(authors, m)
			}
		}
	}

	var uniq []string
	seen := make(map[string]bool)
	for _, a := range authors {
		k := strings.ToLower(a)
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, a)
		}
		if len(uniq) >= maxAuthors {
			break
		}
	}
	return uniq
}

// abstractPatterns are tried in order over the candidate's window.
var abstractPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<[^>]*class="[^"]*abstract[^"]*"[^>]*>(.*?)</[^>]*>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*card-text[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*summary[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)<div[^>]*class="[^"]*description[^"]*"[^>]*>(.*?)</div>`),
	regexp.MustCompile(`(?is)(?:Abstract|Summary|Description)\s*[:\-]\s*(.*?)(?:<|\n\n|\r\n\r\n|$)`),
	regexp.MustCompile(`(?is)"abstract"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"summary"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"description"\s*:\s*"([^"]+)"`),
}

// freeTextSpan finds untagged spans that might be an inline abstract.
var freeTextSpan = regexp.MustCompile(`[^<>]{80,800}`)

// extractAbstract derives the abstract for the candidate at line from a
// -5/+25 line window, truncated to 600 runes with an ellipsis marker.
func extractAbstract(lines []string, line int) string {
	context := contextWindow(lines, line, abstractLinesBefore, abstractLinesAfter)

	for _, re := range abstractPatterns {
		for _, m := range re.FindAllStringSubmatch(context, -1) {
			clean := cleanFragment(m[1])
			if validAbstract(clean) {
				return truncateRunes(clean, listingAbstractMax)
			}
		}
	}
	for _, span := range freeTextSpan.FindAllString(context, -1) {
		clean := cleanFragment(span)
		if validAbstract(clean) {
			return truncateRunes(clean, listingAbstractMax)
		}
	}
	return ""
}

// urlAttrPatterns pull link targets out of the candidate's raw snippet.
var urlAttrPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)href="([^"]+)"`),
	regexp.MustCompile(`(?i)data-url="([^"]+)"`),
	regexp.MustCompile(`(?i)data-href="([^"]+)"`),
	regexp.MustCompile(`(?i)data-link="([^"]+)"`),
}

var hrefPattern = regexp.MustCompile(`(?i)href="([^"]+)"`)

// resolveRelativeURL resolves href against base. Absolute links pass
// through; with no base the href is returned as-is.
func resolveRelativeURL(href, base string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	if base == "" {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// extractURL derives the paper link for a candidate. Three tiers: link
// attributes in the raw snippet, an anchor wrapping the title text in the
// full page, then any paper-like href within 500 bytes of the title.
func extractURL(content, title, rawHTML, base string) string {
	if rawHTML != "" {
		for _, re := range urlAttrPatterns {
			for _, m := range re.FindAllStringSubmatch(rawHTML, -1) {
				href := m[1]
				if href == "" || strings.HasPrefix(href, "#") {
					continue
				}
				if full := resolveRelativeURL(href, base); full != "" && isPaperLink(full) {
					return full
				}
			}
		}
	}

	if trimmed := strings.TrimSpace(title); trimmed != "" {
		r := []rune(trimmed)
		if len(r) > titleAnchorMaxRunes {
			r = r[:titleAnchorMaxRunes]
		}
		anchor := regexp.MustCompile(`(?is)<a[^>]*href="([^"]+)"[^>]*>[^<]*` + regexp.QuoteMeta(string(r)) + `[^<]*</a>`)
		if m := anchor.FindStringSubmatch(content); m != nil {
			if full := resolveRelativeURL(m[1], base); full != "" {
				return full
			}
		}
	}

	pos := strings.Index(strings.ToLower(content), strings.ToLower(title))
	if pos >= 0 {
		start := pos - proximityBytes
		if start < 0 {
			start = 0
		}
		end := pos + len(title) + proximityBytes
		if end > len(content) {
			end = len(content)
		}
		for _, m := range hrefPattern.FindAllStringSubmatch(content[start:end], -1) {
			if full := resolveRelativeURL(m[1], base); full != "" && isPaperLink(full) {
				return full
			}
		}
	}
	return ""
}
