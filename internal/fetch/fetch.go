// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves venue pages over HTTP, one request at a time,
// with bounded retries and browser-like headers. Venue sites are flaky and
// occasionally hostile to obvious bots, so failures degrade to an
// absent-content result instead of hard errors.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/jessecu2024/search-paper/pkg/types"
)

// RetryPolicy describes the retry schedule for one URL.
type RetryPolicy struct {
	// MaxAttempts bounds the total number of tries (default 3).
	MaxAttempts int

	// BaseDelay is the backoff base; attempt i waits BaseDelay * 2^i.
	BaseDelay time.Duration

	// Jitter returns an extra wait added to each backoff. Nil means none;
	// tests leave it nil to keep schedules deterministic.
	Jitter func() time.Duration
}

const defaultMaxAttempts = 3

// DefaultPolicy returns the production schedule: 3 attempts backed off at
// 1.2s, 2.4s, plus up to one second of random jitter per wait.
func DefaultPolicy(base time.Duration) RetryPolicy {
	if base <= 0 {
		base = 1200 * time.Millisecond
	}
	return RetryPolicy{
		MaxAttempts: defaultMaxAttempts,
		BaseDelay:   base,
		Jitter: func() time.Duration {
			return time.Duration(rand.Int63n(int64(time.Second)))
		},
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts <= 0 {
		return defaultMaxAttempts
	}
	return p.MaxAttempts
}

// Backoff returns the wait before retrying after the given 0-based attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	d := p.BaseDelay * (1 << attempt)
	if p.Jitter != nil {
		d += p.Jitter()
	}
	return d
}

// Fetcher performs sequential page retrieval.
type Fetcher struct {
	Client    *http.Client
	Policy    RetryPolicy
	UserAgent string
}

// New builds a Fetcher from scrape configuration.
func New(cfg types.ScrapeConfig) *Fetcher {
	policy := DefaultPolicy(cfg.RetryBaseDelay)
	if cfg.MaxRetries > 0 {
		policy.MaxAttempts = cfg.MaxRetries
	}
	return &Fetcher{
		Client:    &http.Client{Timeout: cfg.Timeout},
		Policy:    policy,
		UserAgent: cfg.UserAgent,
	}
}

// Fetch retrieves url and returns its decoded text. The second return value
// is false when all attempts failed; callers must treat that as "no data".
// Warnings for each failed attempt go to w.
func (f *Fetcher) Fetch(ctx context.Context, url string, w io.Writer) (string, bool) {
	var lastErr error
	for attempt := 0; attempt < f.Policy.attempts(); attempt++ {
		body, err := f.get(ctx, url)
		if err == nil {
			return body, true
		}
		lastErr = err

		if attempt == f.Policy.attempts()-1 {
			break
		}
		backoff := f.Policy.Backoff(attempt)
		fmt.Fprintf(w, "  warning [%d/%d]: %v -> retry in %.1fs: %s\n",
			attempt+1, f.Policy.attempts(), err, backoff.Seconds(), url)
		select {
		case <-ctx.Done():
			fmt.Fprintf(w, "  error: fetch cancelled -> %s (%v)\n", url, ctx.Err())
			return "", false
		case <-time.After(backoff):
		}
	}
	fmt.Fprintf(w, "  error: failed to fetch -> %s (%v)\n", url, lastErr)
	return "", false
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "close")

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	// Accept whatever the server sent; drop bytes that are not valid UTF-8
	// rather than failing the page.
	return strings.ToValidUTF8(string(raw), ""), nil
}
