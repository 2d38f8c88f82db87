package output

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/openalexq/openalexq/internal/openalex"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5, "-5"},
	}
	for _, tt := range tests {
		if got := formatCount(tt.in); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	got := truncate("a much longer string than allowed", 10)
	if len(got) > 12 { // 9 bytes + multibyte ellipsis
		t.Errorf("truncate too long: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestTruncate_Multibyte(t *testing.T) {
	in := strings.Repeat("é", 40)
	got := truncate(in, 10)
	if !utf8.ValidString(got) {
		t.Fatalf("truncate produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 10 {
		t.Errorf("rune count = %d, want 10", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestAuthorNames(t *testing.T) {
	authorships := []openalex.Authorship{
		{Author: openalex.AuthorRef{DisplayName: "A One"}},
		{Author: openalex.AuthorRef{DisplayName: "B Two"}},
		{Author: openalex.AuthorRef{DisplayName: "C Three"}},
		{Author: openalex.AuthorRef{DisplayName: "D Four"}},
	}
	got := authorNames(authorships, 2)
	if got != "A One, B Two +2" {
		t.Errorf("authorNames = %q", got)
	}

	if got := authorNames(authorships[:2], 3); got != "A One, B Two" {
		t.Errorf("authorNames = %q", got)
	}
}

func TestFormatWorksHuman(t *testing.T) {
	works := []openalex.Work{
		{
			ID:              "https://openalex.org/W2741809807",
			Title:           "Attention Is All You Need",
			PublicationYear: 2017,
			CitedByCount:    90000,
			Authorships: []openalex.Authorship{
				{Author: openalex.AuthorRef{DisplayName: "Ashish Vaswani"}},
			},
		},
	}
	meta := &openalex.Meta{Count: 1234, Page: 1}

	var buf bytes.Buffer
	if err := formatWorksHuman(&buf, works, meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "W2741809807") {
		t.Error("expected output to contain the short ID")
	}
	if !strings.Contains(out, "2017") {
		t.Error("expected output to contain the year")
	}
	if !strings.Contains(out, "90,000") {
		t.Error("expected output to contain the formatted citation count")
	}
	if !strings.Contains(out, "Showing 1 of 1,234 results (page 1)") {
		t.Errorf("expected footer, got:\n%s", out)
	}
}

func TestFormatWorksHuman_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := formatWorksHuman(&buf, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("expected no-results message, got %q", buf.String())
	}
}

func TestFormatGroupsHuman(t *testing.T) {
	groups := []openalex.Group{
		{Key: "2023", KeyDisplayName: "2023", Count: 600},
		{Key: "2024", KeyDisplayName: "2024", Count: 400},
	}
	meta := &openalex.Meta{Count: 1000, GroupsCount: 2}

	var buf bytes.Buffer
	if err := formatGroupsHuman(&buf, groups, "publication_year", meta); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Grouped by: publication_year") {
		t.Error("expected group header")
	}
	if !strings.Contains(out, "600") || !strings.Contains(out, "400") {
		t.Error("expected group counts")
	}
	if !strings.Contains(out, "Showing 2 groups (1,000 total entities)") {
		t.Errorf("expected footer, got:\n%s", out)
	}
}

func TestFormatWorkDetailHuman(t *testing.T) {
	work := sampleWork()
	work.AbstractInvertedIndex = map[string][]int{
		"Attention": {0},
		"mechanism": {1},
	}

	var buf bytes.Buffer
	if err := formatWorkDetailHuman(&buf, work); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Attention Is All You Need",
		"W2741809807",
		"2017",
		"Ashish Vaswani",
		"Attention mechanism",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected detail panel to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatAuthorDetailHuman(t *testing.T) {
	h := 15
	author := &openalex.Author{
		ID:           "https://openalex.org/A5023888391",
		DisplayName:  "Jane Doe",
		ORCID:        "https://orcid.org/0000-0002-1825-0097",
		WorksCount:   120,
		CitedByCount: 4500,
		SummaryStats: &openalex.SummaryStats{HIndex: &h},
		LastKnownInstitutions: []openalex.Entity{
			{DisplayName: "MIT", CountryCode: "US"},
		},
	}

	var buf bytes.Buffer
	if err := formatAuthorDetailHuman(&buf, author); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Jane Doe", "A5023888391", "0000-0002-1825-0097", "4,500", "15", "MIT", "US"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected detail panel to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatSourcesHuman(t *testing.T) {
	sources := []openalex.Source{
		{ID: "https://openalex.org/S137773608", DisplayName: "Nature", Type: "journal", WorksCount: 100, IsOA: false},
	}

	var buf bytes.Buffer
	if err := formatSourcesHuman(&buf, sources, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "S137773608") || !strings.Contains(out, "Nature") {
		t.Errorf("expected source row, got:\n%s", out)
	}
}
