// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"regexp"
	"strings"
)

// keywordSet holds precompiled keyword matchers for one page pass.
// Multi-word keywords match as plain substrings; single words match only at
// word boundaries, so "ai" never fires inside "mail".
type keywordSet struct {
	phrases []string
	words   []*regexp.Regexp
}

func newKeywordSet(keywords []string) keywordSet {
	var ks keywordSet
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(kw, " ") {
			ks.phrases = append(ks.phrases, kw)
		} else {
			ks.words = append(ks.words, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return ks
}

func (ks keywordSet) empty() bool {
	return len(ks.phrases) == 0 && len(ks.words) == 0
}

// matches reports whether text contains any keyword of the set.
func (ks keywordSet) matches(text string) bool {
	if text == "" || ks.empty() {
		return false
	}
	low := " " + strings.ToLower(text) + " "
	for _, p := range ks.phrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	for _, w := range ks.words {
		if w.MatchString(low) {
			return true
		}
	}
	return false
}
