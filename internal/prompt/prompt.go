// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive venue/year/keyword selection
// flow. Input and output are injected so the flow is scriptable in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jessecu2024/search-paper/internal/venues"
)

const banner = "============================================================"

// Defaults applied when the user just presses enter.
var (
	defaultYears    = []string{"2024"}
	defaultKeywords = []string{"machine learning"}
)

// Selection is the result of one interactive session.
type Selection struct {
	Venues   []string
	Years    []string
	Keywords []string
}

// Prompter runs the selection dialogue over injected streams.
type Prompter struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *venues.Registry
}

// New builds a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer, registry *venues.Registry) *Prompter {
	return &Prompter{
		in:       bufio.NewScanner(r),
		out:      w,
		registry: registry,
	}
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// showVenues prints the venue menu grouped by category and returns the
// numbered IDs in display order.
func (p *Prompter) showVenues() []string {
	fmt.Fprintln(p.out, "\n=== Available Conferences & Journals ===")
	var ids []string
	n := 1
	for _, cat := range p.registry.Categories() {
		fmt.Fprintf(p.out, "\n%s:\n", cat)
		for _, v := range p.registry.ByCategory(cat) {
			fmt.Fprintf(p.out, "  %d. %s - %s\n", n, v.ID, v.Name)
			ids = append(ids, v.ID)
			n++
		}
	}
	fmt.Fprintln(p.out, "\nQuick Picks:")
	fmt.Fprintln(p.out, "  'ai'  -> ICML, NeurIPS, ICLR, AAAI, IJCAI")
	fmt.Fprintln(p.out, "  'cv'  -> CVPR, ICCV, ECCV")
	fmt.Fprintln(p.out, "  'nlp' -> ACL, EMNLP, NAACL")
	fmt.Fprintln(p.out, "  'all' -> All above")
	return ids
}

// Select runs the full dialogue: venues, years, keywords. Unparseable
// venue input falls back to the AI/ML quick pick; empty year or keyword
// input falls back to the defaults.
func (p *Prompter) Select() (Selection, error) {
	fmt.Fprintln(p.out, banner)
	fmt.Fprintln(p.out, "Paper Search")
	fmt.Fprintln(p.out, banner)

	menu := p.showVenues()
	fmt.Fprintln(p.out, "\nSelect conferences (numbers, comma-separated, e.g., 1,2,3):")
	venueInput, err := p.readLine("Conferences: ")
	if err != nil {
		return Selection{}, fmt.Errorf("reading venue selection: %w", err)
	}
	selected := p.resolveVenues(venueInput, menu)

	fmt.Fprintln(p.out, "\nAvailable years: 2020, 2021, 2022, 2023, 2024, 2025")
	yearInput, err := p.readLine("Years (comma-separated, e.g., 2023,2024): ")
	if err != nil {
		return Selection{}, fmt.Errorf("reading years: %w", err)
	}
	years := splitCSV(yearInput)
	if len(years) == 0 {
		years = defaultYears
	}

	keywordInput, err := p.readLine("\nKeywords (comma-separated, e.g., unlearning,federated learning): ")
	if err != nil {
		return Selection{}, fmt.Errorf("reading keywords: %w", err)
	}
	keywords := splitCSV(keywordInput)
	if len(keywords) == 0 {
		keywords = defaultKeywords
	}

	return Selection{Venues: selected, Years: years, Keywords: keywords}, nil
}

func (p *Prompter) resolveVenues(input string, menu []string) []string {
	if ids := p.registry.ExpandPick(input); len(ids) > 0 {
		return ids
	}

	var selected []string
	for _, tok := range strings.Split(input, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			selected = nil
			break
		}
		if idx >= 1 && idx <= len(menu) {
			selected = append(selected, menu[idx-1])
		}
	}
	if len(selected) == 0 {
		fmt.Fprintln(p.out, "Invalid input. Falling back to AI/ML.")
		return p.registry.ExpandPick("ai")
	}
	return selected
}

// Confirm shows the selection and asks for a y/n go-ahead.
func (p *Prompter) Confirm(sel Selection) bool {
	fmt.Fprintln(p.out, "\nConfirm search:")
	fmt.Fprintf(p.out, "  Venues:   %s\n", strings.Join(sel.Venues, ", "))
	fmt.Fprintf(p.out, "  Years:    %s\n", strings.Join(sel.Years, ", "))
	fmt.Fprintf(p.out, "  Keywords: %s\n", strings.Join(sel.Keywords, ", "))
	return p.YesNo("\nStart search? (y/n): ")
}

// YesNo asks a single yes/no question; anything but "y" is no.
func (p *Prompter) YesNo(question string) bool {
	answer, err := p.readLine(question)
	if err != nil {
		return false
	}
	return strings.ToLower(answer) == "y"
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
