// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package venues provides the registry of conference and journal listing
// pages. The registry is built once (builtin table plus optional YAML
// overrides) and passed into the scraper; it is never mutated afterwards.
package venues

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Venue describes one conference or journal and how to reach its
// accepted-papers pages.
type Venue struct {
	// ID is the short identifier used in requests and reports (e.g. "ICML").
	ID string `yaml:"id"`

	// Name is the full display name.
	Name string `yaml:"name"`

	// ListingURL is the all-papers page template; "{year}" is substituted.
	ListingURL string `yaml:"listing_url"`

	// SearchURL is an optional keyword-query template with "{year}" and
	// "{keyword}" placeholders. Empty when the venue has no search endpoint.
	SearchURL string `yaml:"search_url,omitempty"`

	// BaseURL resolves relative paper links. May itself contain "{year}".
	// Empty means relative links stay unresolved.
	BaseURL string `yaml:"base_url,omitempty"`

	// Years lists the year tokens the venue is known to publish. Advisory:
	// unknown years produce a note, not a failure.
	Years []string `yaml:"years"`

	// Category groups venues for display ("AI/ML", "NLP", ...).
	Category string `yaml:"category"`
}

// HasSearch reports whether the venue offers a keyword-query endpoint.
func (v Venue) HasSearch() bool { return v.SearchURL != "" }

// KnowsYear reports whether year appears in the venue's known-years list.
func (v Venue) KnowsYear(year string) bool {
	for _, y := range v.Years {
		if y == year {
			return true
		}
	}
	return false
}

// ListingPageURL returns the all-papers URL for the given year.
func (v Venue) ListingPageURL(year string) string {
	return strings.ReplaceAll(v.ListingURL, "{year}", year)
}

// SearchPageURL returns the keyword-query URL for the given year and
// keyword. The keyword is query-escaped. Empty when HasSearch is false.
func (v Venue) SearchPageURL(year, keyword string) string {
	if v.SearchURL == "" {
		return ""
	}
	u := strings.ReplaceAll(v.SearchURL, "{year}", year)
	return strings.ReplaceAll(u, "{keyword}", url.QueryEscape(keyword))
}

// Base returns the base URL for resolving relative links, with any "{year}"
// placeholder substituted.
func (v Venue) Base(year string) string {
	return strings.ReplaceAll(v.BaseURL, "{year}", year)
}

// Registry is an immutable venue lookup keyed by ID.
type Registry struct {
	byID  map[string]Venue
	order []string
}

// NewRegistry builds a registry from a slice of venues, preserving order.
// Later entries with a duplicate ID replace earlier ones in place.
func NewRegistry(vs []Venue) *Registry {
	r := &Registry{byID: make(map[string]Venue, len(vs))}
	for _, v := range vs {
		key := strings.ToUpper(v.ID)
		if _, exists := r.byID[key]; !exists {
			r.order = append(r.order, key)
		}
		r.byID[key] = v
	}
	return r
}

// Lookup returns the venue for id (case-insensitive).
func (r *Registry) Lookup(id string) (Venue, bool) {
	v, ok := r.byID[strings.ToUpper(strings.TrimSpace(id))]
	return v, ok
}

// IDs returns all venue IDs in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Categories returns the category names in display order.
func (r *Registry) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, id := range r.order {
		c := r.byID[id].Category
		if c != "" && !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats
}

// ByCategory returns the venues in a category, in registration order.
func (r *Registry) ByCategory(category string) []Venue {
	var out []Venue
	for _, id := range r.order {
		if v := r.byID[id]; v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// Quick-pick shortcuts accepted at venue selection.
var quickPicks = map[string][]string{
	"ai":  {"ICML", "NeurIPS", "ICLR", "AAAI", "IJCAI"},
	"cv":  {"CVPR", "ICCV", "ECCV"},
	"nlp": {"ACL", "EMNLP", "NAACL"},
}

// ExpandPick resolves a quick-pick token ("ai", "cv", "nlp", "all") to venue
// IDs. Unknown tokens return nil.
func (r *Registry) ExpandPick(pick string) []string {
	switch p := strings.ToLower(strings.TrimSpace(pick)); p {
	case "all":
		return r.IDs()
	default:
		if ids, ok := quickPicks[p]; ok {
			out := make([]string, len(ids))
			copy(out, ids)
			return out
		}
		return nil
	}
}

// WithFile returns a new registry with entries from a YAML venues file
// merged in. Entries sharing an ID with a builtin venue replace it; new IDs
// are appended.
func (r *Registry) WithFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading venues file %s: %w", path, err)
	}
	var extra []Venue
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parsing venues file %s: %w", path, err)
	}
	merged := make([]Venue, 0, len(r.order)+len(extra))
	for _, id := range r.order {
		merged = append(merged, r.byID[id])
	}
	merged = append(merged, extra...)
	return NewRegistry(merged), nil
}
