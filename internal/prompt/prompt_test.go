package prompt

import (
	"strings"
	"testing"

	"github.com/jessecu2024/search-paper/internal/venues"
)

func run(t *testing.T, input string) (Selection, string, error) {
	t.Helper()
	var out strings.Builder
	p := New(strings.NewReader(input), &out, venues.Builtin())
	sel, err := p.Select()
	return sel, out.String(), err
}

func TestSelectByNumbers(t *testing.T) {
	sel, out, err := run(t, "1,2\n2023,2024\nunlearning\n")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(sel.Venues) != 2 || sel.Venues[0] != "ICML" || sel.Venues[1] != "NeurIPS" {
		t.Errorf("venues = %v", sel.Venues)
	}
	if len(sel.Years) != 2 || sel.Years[0] != "2023" {
		t.Errorf("years = %v", sel.Years)
	}
	if len(sel.Keywords) != 1 || sel.Keywords[0] != "unlearning" {
		t.Errorf("keywords = %v", sel.Keywords)
	}
	if !strings.Contains(out, "1. ICML") {
		t.Errorf("menu missing numbered entry:\n%s", out)
	}
	if !strings.Contains(out, "Quick Picks:") {
		t.Error("menu missing quick picks")
	}
}

func TestSelectQuickPicks(t *testing.T) {
	tests := []struct {
		pick string
		want int
	}{
		{"ai", 5},
		{"cv", 3},
		{"nlp", 3},
		{"all", 20},
	}
	for _, tt := range tests {
		t.Run(tt.pick, func(t *testing.T) {
			sel, _, err := run(t, tt.pick+"\n\n\n")
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if len(sel.Venues) != tt.want {
				t.Errorf("got %d venues, want %d: %v", len(sel.Venues), tt.want, sel.Venues)
			}
		})
	}
}

func TestSelectDefaults(t *testing.T) {
	sel, _, err := run(t, "ai\n\n\n")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(sel.Years) != 1 || sel.Years[0] != "2024" {
		t.Errorf("default years = %v", sel.Years)
	}
	if len(sel.Keywords) != 1 || sel.Keywords[0] != "machine learning" {
		t.Errorf("default keywords = %v", sel.Keywords)
	}
}

func TestSelectInvalidVenueInputFallsBack(t *testing.T) {
	tests := []string{"banana", "0,99", ""}
	for _, input := range tests {
		t.Run("input="+input, func(t *testing.T) {
			sel, out, err := run(t, input+"\n\n\n")
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if len(sel.Venues) != 5 || sel.Venues[0] != "ICML" {
				t.Errorf("fallback venues = %v", sel.Venues)
			}
			if !strings.Contains(out, "Falling back to AI/ML.") {
				t.Error("fallback should be announced")
			}
		})
	}
}

func TestSelectInputClosed(t *testing.T) {
	if _, _, err := run(t, ""); err == nil {
		t.Error("closed input should surface an error")
	}
}

func TestConfirm(t *testing.T) {
	sel := Selection{Venues: []string{"ICML"}, Years: []string{"2024"}, Keywords: []string{"x"}}

	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.answer), func(t *testing.T) {
			var out strings.Builder
			p := New(strings.NewReader(tt.answer), &out, venues.Builtin())
			if got := p.Confirm(sel); got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.answer, got, tt.want)
			}
			if !strings.Contains(out.String(), "Venues:   ICML") {
				t.Error("confirmation should echo the selection")
			}
		})
	}
}
