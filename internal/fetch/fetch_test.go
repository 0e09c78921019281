// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroPolicy retries immediately so tests finish quickly.
func zeroPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: 0}
}

func newTestFetcher(ts *httptest.Server, attempts int) *Fetcher {
	return &Fetcher{
		Client:    ts.Client(),
		Policy:    zeroPolicy(attempts),
		UserAgent: "test/0.1",
	}
}

func TestFetchImmediateSuccess(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "test/0.1", r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.Write([]byte("<html>papers</html>"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	content, ok := newTestFetcher(ts, 3).Fetch(context.Background(), ts.URL, &buf)
	require.True(t, ok)
	assert.Equal(t, "<html>papers</html>", content)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	content, ok := newTestFetcher(ts, 3).Fetch(context.Background(), ts.URL, &buf)
	require.True(t, ok)
	assert.Equal(t, "ok", content)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "warning [1/3]")
}

func TestFetchExhaustsRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	content, ok := newTestFetcher(ts, 3).Fetch(context.Background(), ts.URL, &buf)
	assert.False(t, ok)
	assert.Empty(t, content)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "failed to fetch")
}

func TestFetchContextCancelledDuringBackoff(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	f := newTestFetcher(ts, 3)
	f.Policy.BaseDelay = 500 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	_, ok := f.Fetch(ctx, ts.URL, &buf)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "cancelled")
}

func TestFetchScrubsInvalidUTF8(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("abc\xff\xfedef"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	content, ok := newTestFetcher(ts, 1).Fetch(context.Background(), ts.URL, &buf)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(content, "abc"))
	assert.True(t, strings.HasSuffix(content, "def"))
	assert.True(t, len(content) <= len("abcdef"))
}

func TestBackoffDoubles(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: 1200 * time.Millisecond}
	assert.Equal(t, 1200*time.Millisecond, p.Backoff(0))
	assert.Equal(t, 2400*time.Millisecond, p.Backoff(1))
	assert.Equal(t, 4800*time.Millisecond, p.Backoff(2))
}

func TestBackoffJitterAdded(t *testing.T) {
	p := RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Jitter:      func() time.Duration { return 250 * time.Millisecond },
	}
	assert.Equal(t, 1250*time.Millisecond, p.Backoff(0))
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy(0)
	assert.Equal(t, 3, p.attempts())
	assert.Equal(t, 1200*time.Millisecond, p.BaseDelay)
	require.NotNil(t, p.Jitter)
	j := p.Jitter()
	assert.GreaterOrEqual(t, j, time.Duration(0))
	assert.Less(t, j, time.Second)
}
