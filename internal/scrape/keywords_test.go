package scrape

import "testing"

func TestKeywordWordBoundary(t *testing.T) {
	ks := newKeywordSet([]string{"ai"})

	tests := []struct {
		text string
		want bool
	}{
		{"AI safety for robots", true},
		{"Towards ai alignment", true},
		{"Check your mail today", false},
		{"maintenance schedules", false},
		{"(AI) in parentheses", true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ks.matches(tt.text); got != tt.want {
				t.Errorf("matches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordPhraseSubstring(t *testing.T) {
	ks := newKeywordSet([]string{"federated learning"})

	if !ks.matches("Advances in Federated Learning Systems") {
		t.Error("phrase should match case-insensitively")
	}
	if ks.matches("federated unlearning methods") {
		t.Error("phrase must match contiguously")
	}
}

func TestKeywordSetEdgeCases(t *testing.T) {
	if newKeywordSet(nil).matches("anything") {
		t.Error("empty keyword set matches nothing")
	}
	if newKeywordSet([]string{"  ", ""}).matches("anything") {
		t.Error("blank keywords are dropped")
	}
	if newKeywordSet([]string{"ai"}).matches("") {
		t.Error("empty text matches nothing")
	}

	// Regex metacharacters in keywords are literal.
	ks := newKeywordSet([]string{"u.s"})
	if !ks.matches("the u.s economy") {
		t.Error("dot should be quoted, not wildcarded")
	}
	if ks.matches("the ups economy") {
		t.Error("dot must not act as a wildcard")
	}
}
