package scrape

import "testing"

func TestDetectCandidatesLinePass(t *testing.T) {
	content := "<html>\n" +
		"<body>\n" +
		"<h3>Federated Unlearning for Deep Neural Networks</h3>\n" +
		"<a href=\"/paper/123\">details</a>\n" +
		"</body>\n" +
		"</html>\n"

	got := detectCandidates(content, newKeywordSet([]string{"unlearning"}))
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(got), got)
	}
	c := got[0]
	if c.Title != "Federated Unlearning for Deep Neural Networks" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Line != 2 {
		t.Errorf("line = %d, want 2", c.Line)
	}
	if c.RawHTML != `<h3>Federated Unlearning for Deep Neural Networks</h3>` {
		t.Errorf("raw snippet = %q", c.RawHTML)
	}
}

func TestDetectCandidatesEntityUnescape(t *testing.T) {
	content := "<h3>Learning &amp; Reasoning over Knowledge Graphs</h3>\n"

	got := detectCandidates(content, newKeywordSet([]string{"learning"}))
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Learning & Reasoning over Knowledge Graphs" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestDetectCandidatesStructuralFallback(t *testing.T) {
	// Everything on one line: the per-line pass sees the whole page as a
	// single blob that the visible URL blacklists, so the structural pass
	// must recover the heading.
	content := `<div><h3>Graph Neural Networks for Molecules</h3><span>archives at https://example.org/archive</span></div>`

	got := detectCandidates(content, newKeywordSet([]string{"neural"}))
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(got), got)
	}
	if got[0].Title != "Graph Neural Networks for Molecules" {
		t.Errorf("title = %q", got[0].Title)
	}
	if got[0].Line != 0 {
		t.Errorf("line = %d, want 0", got[0].Line)
	}
}

func TestDetectCandidatesFallbackSkippedWhenLinePassHits(t *testing.T) {
	// Both lines are valid line-pass titles and both would also match the
	// structural patterns; running both passes would double them up.
	content := "<h2>Robust Optimization under Uncertainty Constraints</h2>\n" +
		"<strong>Another Optimization Idea Entirely</strong>\n"

	got := detectCandidates(content, newKeywordSet([]string{"optimization"}))
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2 (line pass only): %+v", len(got), got)
	}
}

func TestDetectCandidatesNothing(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty page", ""},
		{"no keyword hit", "<h3>Quantum Chemistry Simulations at Scale</h3>\n"},
		{"keyword hits invalid title", "<h3>pdf</h3>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectCandidates(tt.content, newKeywordSet([]string{"unlearning", "pdf"})); len(got) != 0 {
				t.Errorf("got %d candidates, want 0: %+v", len(got), got)
			}
		})
	}
}
