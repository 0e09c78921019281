package types

import "time"

// HTTPConfig holds shared HTTP settings used by network-facing components.
type HTTPConfig struct {
	// Timeout is the per-attempt HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with requests. Venue sites
	// reject obvious bots, so the default is a desktop browser string.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for the listing-page scrape pipeline.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries bounds fetch attempts per URL (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RetryBaseDelay is the base for exponential backoff between attempts
	// (default 1.2s: 1.2s, 2.4s, 4.8s plus jitter).
	RetryBaseDelay time.Duration `json:"retry_base_delay" yaml:"retry_base_delay"`

	// ListingDelay is the politeness pause between listing-page fetches
	// (default 1.2s).
	ListingDelay time.Duration `json:"listing_delay" yaml:"listing_delay"`

	// DetailDelay is the pause after each detail-page fetch (default 800ms).
	DetailDelay time.Duration `json:"detail_delay" yaml:"detail_delay"`

	// OutputDir is where reports, debug dumps, and the run archive live
	// (default "output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// VenuesFile optionally points at a YAML file with extra or overriding
	// venue entries.
	VenuesFile string `json:"venues_file,omitempty" yaml:"venues_file,omitempty"`
}

// StoreConfig holds settings for the run archive.
type StoreConfig struct {
	// DatabasePath is the SQLite file path (default OutputDir/search-paper.db).
	DatabasePath string `json:"database_path" yaml:"database_path"`
}
