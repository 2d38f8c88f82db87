// Package output provides formatting for OpenAlex CLI output: JSON, rich
// terminal tables and panels, and BibTeX.
package output

import (
	"encoding/json"
	"io"

	"github.com/openalexq/openalexq/internal/openalex"
)

// Config controls which output mode is active.
type Config struct {
	JSON   bool // structured JSON (also forced when stdout is not a TTY)
	BibTeX bool // BibTeX citations (works only)
}

// FormatWorksPage writes one page of works. Grouped queries render the
// group buckets instead of results.
func FormatWorksPage(w io.Writer, page *openalex.WorksPage, groupBy string, cfg Config) error {
	if groupBy != "" {
		if cfg.JSON {
			return writeListJSON(w, page.Groups, &page.Meta)
		}
		return formatGroupsHuman(w, page.Groups, groupBy, &page.Meta)
	}

	if cfg.BibTeX {
		return FormatWorksBibTeX(w, page.Results)
	}
	if cfg.JSON {
		return writeListJSON(w, page.Results, &page.Meta)
	}
	return formatWorksHuman(w, page.Results, &page.Meta)
}

// FormatWorks writes a list of individually fetched works (no meta).
func FormatWorks(w io.Writer, works []openalex.Work, cfg Config) error {
	if cfg.BibTeX {
		return FormatWorksBibTeX(w, works)
	}
	if cfg.JSON {
		return writeListJSON(w, works, nil)
	}
	return formatWorksHuman(w, works, nil)
}

// FormatWorkDetail writes a single work as a detail panel (or JSON).
func FormatWorkDetail(w io.Writer, work *openalex.Work, cfg Config) error {
	if cfg.BibTeX {
		return FormatWorkBibTeX(w, work)
	}
	if cfg.JSON {
		return writeSingleJSON(w, work)
	}
	return formatWorkDetailHuman(w, work)
}

// FormatAuthorsPage writes one page of authors.
func FormatAuthorsPage(w io.Writer, page *openalex.AuthorsPage, groupBy string, cfg Config) error {
	if groupBy != "" {
		if cfg.JSON {
			return writeListJSON(w, page.Groups, &page.Meta)
		}
		return formatGroupsHuman(w, page.Groups, groupBy, &page.Meta)
	}
	if cfg.JSON {
		return writeListJSON(w, page.Results, &page.Meta)
	}
	return formatAuthorsHuman(w, page.Results, &page.Meta)
}

// FormatAuthorDetail writes a single author.
func FormatAuthorDetail(w io.Writer, author *openalex.Author, cfg Config) error {
	if cfg.JSON {
		return writeSingleJSON(w, author)
	}
	return formatAuthorDetailHuman(w, author)
}

// FormatInstitutionsPage writes one page of institutions.
func FormatInstitutionsPage(w io.Writer, page *openalex.InstitutionsPage, groupBy string, cfg Config) error {
	if groupBy != "" {
		if cfg.JSON {
			return writeListJSON(w, page.Groups, &page.Meta)
		}
		return formatGroupsHuman(w, page.Groups, groupBy, &page.Meta)
	}
	if cfg.JSON {
		return writeListJSON(w, page.Results, &page.Meta)
	}
	return formatInstitutionsHuman(w, page.Results, &page.Meta)
}

// FormatInstitutionDetail writes a single institution.
func FormatInstitutionDetail(w io.Writer, inst *openalex.Institution, cfg Config) error {
	if cfg.JSON {
		return writeSingleJSON(w, inst)
	}
	return formatInstitutionDetailHuman(w, inst)
}

// FormatSourcesPage writes one page of sources.
func FormatSourcesPage(w io.Writer, page *openalex.SourcesPage, groupBy string, cfg Config) error {
	if groupBy != "" {
		if cfg.JSON {
			return writeListJSON(w, page.Groups, &page.Meta)
		}
		return formatGroupsHuman(w, page.Groups, groupBy, &page.Meta)
	}
	if cfg.JSON {
		return writeListJSON(w, page.Results, &page.Meta)
	}
	return formatSourcesHuman(w, page.Results, &page.Meta)
}

// FormatSourceDetail writes a single source.
func FormatSourceDetail(w io.Writer, source *openalex.Source, cfg Config) error {
	if cfg.JSON {
		return writeSingleJSON(w, source)
	}
	return formatSourceDetailHuman(w, source)
}

// FormatErrorJSON writes an error as structured JSON for scripted callers.
func FormatErrorJSON(w io.Writer, err error) error {
	return writeJSON(w, openalex.ErrorDict(err))
}

// listEnvelope is the JSON wrapper for list output.
type listEnvelope struct {
	Results any            `json:"results"`
	Count   int            `json:"count"`
	Meta    *openalex.Meta `json:"meta,omitempty"`
}

// singleEnvelope is the JSON wrapper for single-entity output.
type singleEnvelope struct {
	Result any `json:"result"`
}

func writeListJSON[T any](w io.Writer, results []T, meta *openalex.Meta) error {
	if results == nil {
		results = []T{}
	}
	return writeJSON(w, listEnvelope{Results: results, Count: len(results), Meta: meta})
}

func writeSingleJSON(w io.Writer, v any) error {
	return writeJSON(w, singleEnvelope{Result: v})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
