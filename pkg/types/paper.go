// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search-paper pipeline.
package types

// PaperRecord is one paper recovered from a venue listing page. Fields the
// heuristics could not fill stay empty; callers treat empty as "not found",
// never as an error.
type PaperRecord struct {
	// Title is the cleaned listing-page title (5-300 chars after trimming).
	Title string `json:"title" yaml:"title"`

	// Authors lists extracted author names in page order, case-insensitively
	// unique, at most 8.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the validated abstract, truncated with a "..." marker when
	// it exceeded the per-source limit (600 listing, 1200 detail page).
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Venue is the venue identifier (e.g. "ICML").
	Venue string `json:"venue" yaml:"venue"`

	// Year is the requested year token, kept as a string.
	Year string `json:"year" yaml:"year"`

	// URL is the paper link, resolved against the venue base when relative.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Source describes where the record came from ("<venue> Official Website").
	Source string `json:"source" yaml:"source"`
}
