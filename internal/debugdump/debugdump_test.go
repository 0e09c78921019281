package debugdump

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteAndPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	var log strings.Builder

	Write(dir, "ICML", "2024", "<html></html>", &log)

	path := Path(dir, "ICML", "2024")
	if filepath.Base(path) != "debug_ICML_2024.html" {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("dump not written: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q", data)
	}
	if !strings.Contains(log.String(), "Debug file:") {
		t.Errorf("missing log line: %q", log.String())
	}
}

func TestAnalyzeCounts(t *testing.T) {
	dir := t.TempDir()
	page := `<html><body>
<a href="/paper/1">one</a>
<a href="/paper/2">two</a>
<div class="author">Jane Doe</div>
<span class="presenter">John Roe</span>
<div class="abstract">text</div>
<script>{"authors": ["x"], "abstract": "y"}</script>
</body></html>`
	if err := os.WriteFile(filepath.Join(dir, "debug_ICML_2024.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	var log strings.Builder
	summaries, err := Analyze(dir, &log)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}

	s := summaries[0]
	if s.File != "debug_ICML_2024.html" {
		t.Errorf("file = %q", s.File)
	}
	if s.Links != 2 {
		t.Errorf("links = %d, want 2", s.Links)
	}
	// Two classed elements plus one JSON key each.
	if s.AuthorMarkers != 3 {
		t.Errorf("author markers = %d, want 3", s.AuthorMarkers)
	}
	if s.AbstractMarkers != 2 {
		t.Errorf("abstract markers = %d, want 2", s.AbstractMarkers)
	}
	if !strings.Contains(log.String(), "Found 1 debug files.") {
		t.Errorf("log missing header: %q", log.String())
	}
}

func TestAnalyzeNoFiles(t *testing.T) {
	var log strings.Builder
	summaries, err := Analyze(t.TempDir(), &log)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if summaries != nil {
		t.Errorf("got %v, want nil", summaries)
	}
	if !strings.Contains(log.String(), "No debug files found.") {
		t.Errorf("log = %q", log.String())
	}
}

func TestAnalyzeIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"debug_ACL_2023.html": "<a href='/paper/1'>x</a>",
		"report.md":           "# not a dump",
		"notes.html":          "<a href='/x'>y</a>",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	summaries, err := Analyze(dir, &strings.Builder{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(summaries) != 1 || summaries[0].File != "debug_ACL_2023.html" {
		t.Errorf("summaries = %+v", summaries)
	}
}
