// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape is the heuristic extraction core. It recovers structured
// paper records from venue listing pages whose markup is unknown and
// inconsistent, using ordered pattern tiers with first-match-wins
// precedence. It is deliberately not an HTML parser: the pages it targets
// are too irregular for one, so every tier is a best-effort regex over raw
// text, gated by plausibility validators.
package scrape

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stripTags replaces every HTML tag with a single space.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, " ")
}

// cleanFragment turns a raw HTML fragment into readable text: tags out,
// entities unescaped, whitespace collapsed, ends trimmed.
func cleanFragment(s string) string {
	s = html.UnescapeString(stripTags(s))
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// truncateRunes shortens s to at most n runes, appending "..." when
// anything was cut.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// splitSentences splits text into sentence-like segments after ./!/? runs
// followed by whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var parts []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		// Consume the punctuation run, then require whitespace.
		j := i
		for j+1 < len(runes) && (runes[j+1] == '.' || runes[j+1] == '!' || runes[j+1] == '?') {
			j++
		}
		if j+1 < len(runes) && (runes[j+1] == ' ' || runes[j+1] == '\t' || runes[j+1] == '\n' || runes[j+1] == '\r') {
			parts = append(parts, string(runes[start:j+1]))
			k := j + 1
			for k < len(runes) && (runes[k] == ' ' || runes[k] == '\t' || runes[k] == '\n' || runes[k] == '\r') {
				k++
			}
			start = k
			i = k - 1
		} else {
			i = j
		}
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}
