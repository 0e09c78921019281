package scrape

import (
	"strings"
	"testing"
)

func TestCleanFragment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tags stripped", "<b>Deep</b> <i>Learning</i>", "Deep Learning"},
		{"entities unescaped", "Fast &amp; Robust", "Fast & Robust"},
		{"whitespace collapsed", "  a \n\t b  ", "a b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanFragment(tt.input); got != tt.want {
				t.Errorf("cleanFragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("short", 10); got != "short" {
		t.Errorf("no-op truncation changed string: %q", got)
	}
	got := truncateRunes(strings.Repeat("x", 700), 600)
	if len(got) != 603 || !strings.HasSuffix(got, "...") {
		t.Errorf("len = %d, want 600 + ellipsis", len(got))
	}
	// Exactly at the limit: untouched.
	if got := truncateRunes(strings.Repeat("x", 600), 600); len(got) != 600 {
		t.Errorf("boundary string should not be truncated, len = %d", len(got))
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"periods",
			"First sentence. Second one. Third",
			[]string{"First sentence.", "Second one.", "Third"},
		},
		{
			"mixed punctuation runs",
			"Really?! Yes. Done",
			[]string{"Really?!", "Yes.", "Done"},
		},
		{
			"no trailing whitespace keeps decimal together",
			"Accuracy of 99.5 percent was reached. Great",
			[]string{"Accuracy of 99.5 percent was reached.", "Great"},
		},
		{"single", "No punctuation here", []string{"No punctuation here"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d parts %q, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("part[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestContextWindow(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5"}

	tests := []struct {
		name                  string
		anchor, before, after int
		want                  string
	}{
		{"middle", 2, 1, 2, "l1\nl2\nl3"},
		{"clamped start", 0, 5, 2, "l0\nl1"},
		{"clamped end", 5, 1, 25, "l4\nl5"},
		{"whole document", 3, 10, 10, "l0\nl1\nl2\nl3\nl4\nl5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contextWindow(lines, tt.anchor, tt.before, tt.after); got != tt.want {
				t.Errorf("contextWindow = %q, want %q", got, tt.want)
			}
		})
	}
}
