package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/openalexq/openalexq/internal/openalex"
)

func TestFormatWorksPage_JSONEnvelope(t *testing.T) {
	page := &openalex.WorksPage{
		Meta:    openalex.Meta{Count: 321, Page: 2, PerPage: 25},
		Results: []openalex.Work{{ID: "https://openalex.org/W1", Title: "t"}},
	}

	var buf strings.Builder
	if err := FormatWorksPage(&buf, page, "", Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Results []openalex.Work `json:"results"`
		Count   int             `json:"count"`
		Meta    *openalex.Meta  `json:"meta"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Count != 1 {
		t.Errorf("count = %d, want 1 (result count, not total)", decoded.Count)
	}
	if decoded.Meta == nil || decoded.Meta.Count != 321 {
		t.Errorf("meta = %+v", decoded.Meta)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Title != "t" {
		t.Errorf("results = %+v", decoded.Results)
	}
}

func TestFormatWorksPage_EmptyResultsAsArray(t *testing.T) {
	page := &openalex.WorksPage{}

	var buf strings.Builder
	if err := FormatWorksPage(&buf, page, "", Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"results": []`) {
		t.Errorf("empty results must encode as [], got:\n%s", buf.String())
	}
}

func TestFormatWorksPage_GroupedJSON(t *testing.T) {
	page := &openalex.WorksPage{
		Meta:   openalex.Meta{Count: 10, GroupsCount: 2},
		Groups: []openalex.Group{{Key: "2023", Count: 6}, {Key: "2024", Count: 4}},
	}

	var buf strings.Builder
	if err := FormatWorksPage(&buf, page, "publication_year", Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Results []openalex.Group `json:"results"`
		Count   int              `json:"count"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Results) != 2 || decoded.Results[0].Key != "2023" {
		t.Errorf("results = %+v", decoded.Results)
	}
}

func TestFormatWorkDetail_JSONEnvelope(t *testing.T) {
	work := &openalex.Work{ID: "https://openalex.org/W1", Title: "t"}

	var buf strings.Builder
	if err := FormatWorkDetail(&buf, work, Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Result *openalex.Work `json:"result"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Result == nil || decoded.Result.Title != "t" {
		t.Errorf("result = %+v", decoded.Result)
	}
}

func TestFormatWorksPage_BibTeX(t *testing.T) {
	page := &openalex.WorksPage{Results: []openalex.Work{*sampleWork()}}

	var buf strings.Builder
	if err := FormatWorksPage(&buf, page, "", Config{BibTeX: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "@article{") {
		t.Errorf("expected BibTeX output, got:\n%s", buf.String())
	}
}

func TestFormatErrorJSON(t *testing.T) {
	srvErr := openalexNotFound(t)

	var buf strings.Builder
	if err := FormatErrorJSON(&buf, srvErr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["error"] != "Entity not found" {
		t.Errorf("error = %v", decoded["error"])
	}
	if decoded["status_code"] != float64(404) {
		t.Errorf("status_code = %v", decoded["status_code"])
	}
	if decoded["documentation"] != openalex.DocumentationURL {
		t.Errorf("documentation = %v", decoded["documentation"])
	}
}

// openalexNotFound produces a typed not-found error through the public API.
func openalexNotFound(t *testing.T) error {
	t.Helper()
	return &openalex.APIError{
		Message:    "Entity not found",
		StatusCode: 404,
		Suggestion: "Check the ID format",
	}
}

func TestFormatAuthorsPage_JSONEnvelope(t *testing.T) {
	page := &openalex.AuthorsPage{
		Meta:    openalex.Meta{Count: 5},
		Results: []openalex.Author{{ID: "https://openalex.org/A1", DisplayName: "Jane Doe"}},
	}

	var buf strings.Builder
	if err := FormatAuthorsPage(&buf, page, "", Config{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Results []openalex.Author `json:"results"`
		Count   int               `json:"count"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].DisplayName != "Jane Doe" {
		t.Errorf("results = %+v", decoded.Results)
	}
}
