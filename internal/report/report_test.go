package report

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jessecu2024/search-paper/pkg/types"
)

func sampleReport() Report {
	return Report{
		Venues:   []string{"ICML", "NeurIPS"},
		Years:    []string{"2023", "2024"},
		Keywords: []string{"federated learning", "unlearning"},
		Papers: []types.PaperRecord{
			{Title: "Paper One", Venue: "NeurIPS", Year: "2024", Authors: []string{"A One", "B Two"}, URL: "https://n/1", Abstract: "Text one."},
			{Title: "Paper Two", Venue: "ICML", Year: "2023"},
			{Title: "Paper Three", Venue: "ICML", Year: "2024"},
		},
		GeneratedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestSafeToken(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"federated learning", "federated_learning"},
		{"a,b/c", "a-b-c"},
		{"weird!!chars??here", "weird_chars_here"},
		{"__trim__", "trim"},
		{"   ", "NA"},
		{"ICML", "ICML"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := safeToken(tt.in); got != tt.want {
				t.Errorf("safeToken(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBasename(t *testing.T) {
	got := sampleReport().Basename()
	want := "federated_learning-unlearning+ICML-NeurIPS+2023-2024__20260314_092653"
	if got != want {
		t.Errorf("basename = %q, want %q", got, want)
	}
}

func TestBasenameEmptyConditions(t *testing.T) {
	r := Report{GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	if got := r.Basename(); got != "NA+NA+NA__20260102_030405" {
		t.Errorf("basename = %q", got)
	}
}

func TestMarkdownLayout(t *testing.T) {
	md := sampleReport().Markdown()

	for _, want := range []string{
		"# Paper Search Report",
		"**Generated at**: 2026-03-14 09:26:53",
		"**Venues**: ICML, NeurIPS",
		"**Total Papers**: 3",
		"- **ICML**: 2",
		"- **NeurIPS**: 1",
		"### ICML (2)",
		"#### 1. Paper Two",
		"#### 2. Paper Three",
		"**Authors**: A One, B Two",
		"**URL**: [https://n/1](https://n/1)",
		"**Abstract**: Text one.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	// Venue groups ascending, year stats descending.
	if strings.Index(md, "### ICML") > strings.Index(md, "### NeurIPS") {
		t.Error("venue sections should be sorted ascending")
	}
	if strings.Index(md, "- **2024**") > strings.Index(md, "- **2023**") {
		t.Error("year stats should be sorted descending")
	}
}

func TestMarkdownOmitsEmptyFields(t *testing.T) {
	md := Report{
		Papers:      []types.PaperRecord{{Title: "Bare Paper", Venue: "ACL", Year: "2024"}},
		GeneratedAt: time.Now(),
	}.Markdown()

	if strings.Contains(md, "**Authors**:") || strings.Contains(md, "**URL**:") || strings.Contains(md, "**Abstract**:") {
		t.Error("absent fields must not produce lines")
	}
}

func TestJSONPayload(t *testing.T) {
	data, err := sampleReport().JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var got struct {
		GeneratedAt string         `json:"generated_at"`
		Conferences []string       `json:"conferences"`
		TotalPapers int            `json:"total_papers"`
		VenueStats  map[string]int `json:"venue_stats"`
		YearStats   map[string]int `json:"year_stats"`
		Papers      []types.PaperRecord
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got.GeneratedAt != "2026-03-14T09:26:53Z" {
		t.Errorf("generated_at = %q", got.GeneratedAt)
	}
	if got.TotalPapers != 3 || len(got.Papers) != 3 {
		t.Errorf("total = %d papers = %d", got.TotalPapers, len(got.Papers))
	}
	if got.VenueStats["ICML"] != 2 || got.YearStats["2024"] != 2 {
		t.Errorf("stats wrong: %v %v", got.VenueStats, got.YearStats)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	var log strings.Builder

	mdPath, jsonPath, err := sampleReport().Save(dir, &log)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("reading markdown: %v", err)
	}
	if !strings.HasPrefix(string(md), "# Paper Search Report") {
		t.Error("markdown file content wrong")
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("reading json: %v", err)
	}
	if !json.Valid(data) {
		t.Error("json file is not valid JSON")
	}

	if !strings.Contains(log.String(), "Report saved:") {
		t.Errorf("missing save log, got %q", log.String())
	}
}
