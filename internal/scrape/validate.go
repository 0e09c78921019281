// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// The validators below are empirically tuned against real venue markup.
// Thresholds and vocabularies are deliberate; loosening them floods the
// results with navigation text, tightening them drops real papers.

// titleBlacklist rejects lines that are clearly not paper titles.
var titleBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`^\d+\s*$`),
	regexp.MustCompile(`^(abstract|author|paper|download|pdf|view|more|home|about|contact)s?\s*$`),
	regexp.MustCompile(`https?://`),
	regexp.MustCompile(`^(figure|table|equation|fig|tab|eq)\s+\d+`),
	regexp.MustCompile(`^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`^\w{1,2}\s*$`),
}

// titleVocabulary admits short titles that carry a domain term.
var titleVocabulary = []string{
	"learning", "algorithm", "network", "model", "method", "approach",
	"analysis", "system", "framework", "optimization", "deep", "neural",
	"machine", "artificial", "data", "unlearning", "federated",
}

// validTitle reports whether s is a plausible paper title: 5-300 chars
// after trimming, no blacklist hit, and either a domain term or at least
// three words.
func validTitle(s string) bool {
	t := strings.TrimSpace(s)
	n := utf8.RuneCountInString(t)
	if n < 5 || n > 300 {
		return false
	}
	low := strings.ToLower(t)
	for _, re := range titleBlacklist {
		if re.MatchString(low) {
			return false
		}
	}
	for _, term := range titleVocabulary {
		if strings.Contains(low, term) {
			return true
		}
	}
	return len(strings.Fields(t)) >= 3
}

var authorBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`^\d+`),
	regexp.MustCompile(`(abstract|paper|download|pdf|view|session|poster|oral)`),
	regexp.MustCompile(`^(the|and|or|in|on|at|by|for|with|to|from)\b`),
	regexp.MustCompile(`(university|institute|college|department|lab|google|facebook|microsoft|openai|meta|amazon)`),
	regexp.MustCompile(`(gmail|email|@)`),
	regexp.MustCompile(`^[\W_]+$`),
}

// nameShape matches "First [Middle] Last" with periods, hyphens, and
// apostrophes, optionally comma-separated (surname-first listings).
var nameShape = regexp.MustCompile(`^[A-Za-z][A-Za-z.\-']+(\s*,\s*|\s+)[A-Za-z][A-Za-z.\-']+(\s+[A-Za-z.\-']+)*$`)

var alphaToken = regexp.MustCompile(`[A-Za-z]+`)

// validAuthorName reports whether s is a plausible person name.
func validAuthorName(s string) bool {
	name := strings.TrimSpace(html.UnescapeString(s))
	n := utf8.RuneCountInString(name)
	if n < 3 || n > 80 {
		return false
	}
	low := strings.ToLower(name)
	for _, re := range authorBlacklist {
		if re.MatchString(low) {
			return false
		}
	}
	if nameShape.MatchString(name) {
		return true
	}
	return len(alphaToken.FindAllString(name, 3)) >= 2
}

var abstractBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`^(author|paper|download|pdf|view|session|poster|oral|home|about)\b`),
	regexp.MustCompile(`^(figure|table|equation|fig|tab|eq)\s+\d+`),
	regexp.MustCompile(`^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
	regexp.MustCompile(`^(copyright|all rights reserved)\b`),
	regexp.MustCompile(`^(click|download|view|more)\b`),
	regexp.MustCompile(`^\d+\s*(of|/)\s*\d+`),
}

// abstractVocabulary: three hits plus two sentences make a text read like an
// abstract.
var abstractVocabulary = []string{
	"we", "our", "this", "paper", "propose", "present", "show", "demonstrate",
	"method", "approach", "algorithm", "model", "framework", "technique",
	"results", "experiments", "evaluation", "performance", "learning",
	"problem", "solution", "novel", "new", "introduce", "develop",
}

// abstractStarters admit single-sentence abstracts that open the usual way.
var abstractStarters = []string{
	"we propose", "this paper", "we present", "we introduce",
	"in this", "we develop", "we show", "this work",
}

// validAbstract reports whether text plausibly is a paper abstract:
// 50-2000 chars, no boilerplate opening, and either two sentence-like
// segments with three vocabulary hits or a recognized opening phrase.
func validAbstract(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < 50 || n > 2000 {
		return false
	}
	low := strings.ToLower(text)
	for _, re := range abstractBlacklist {
		if re.MatchString(low) {
			return false
		}
	}

	hits := 0
	for _, term := range abstractVocabulary {
		if strings.Contains(low, term) {
			hits++
		}
	}
	sentences := 0
	for _, seg := range sentencePunct.Split(text, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(seg)) > 10 {
			sentences++
		}
	}
	if sentences >= 2 && hits >= 3 {
		return true
	}
	for _, st := range abstractStarters {
		if strings.Contains(low, st) {
			return true
		}
	}
	return false
}

var sentencePunct = regexp.MustCompile(`[.!?]+`)

var assetExtension = regexp.MustCompile(`\.(css|js|png|jpg|jpeg|gif|ico)(\?|$)`)

// paperLinkIndicators: a link must hint at paper content to be kept.
var paperLinkIndicators = []string{
	"paper", "poster", "presentation", "virtual", "abstract",
	"proceedings", "publication", "article", "pdf",
}

// isPaperLink reports whether a URL plausibly points at a paper page.
func isPaperLink(u string) bool {
	if u == "" {
		return false
	}
	low := strings.ToLower(u)
	for _, bad := range []string{"#", "javascript:", "mailto:"} {
		if strings.Contains(low, bad) {
			return false
		}
	}
	if assetExtension.MatchString(low) {
		return false
	}
	for _, ind := range paperLinkIndicators {
		if strings.Contains(low, ind) {
			return true
		}
	}
	return false
}
