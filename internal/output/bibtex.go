package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/openalexq/openalexq/internal/openalex"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// entryTypes maps OpenAlex work types to BibTeX entry types.
var entryTypes = map[string]string{
	"journal-article":     "article",
	"article":             "article",
	"proceedings-article": "inproceedings",
	"book":                "book",
	"book-chapter":        "incollection",
	"dissertation":        "phdthesis",
	"dataset":             "misc",
	"preprint":            "unpublished",
	"report":              "techreport",
}

// keyStopwords are skipped when choosing the title word for a citation key.
var keyStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "on": true, "in": true,
	"of": true, "for": true, "to": true, "and": true, "with": true,
}

var asciiFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// asciiFold strips diacritics and drops any remaining non-ASCII runes.
func asciiFold(s string) string {
	folded, _, err := transform.String(asciiFolder, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// letterToken lowercases a string and keeps only ASCII letters.
func letterToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(asciiFold(s)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// citationKey builds a key like "smith2023attention" from the first author's
// last name, the publication year, and the first significant title word.
func citationKey(work *openalex.Work) string {
	name := "unknown"
	if len(work.Authorships) > 0 {
		display := work.Authorships[0].Author.DisplayName
		parts := strings.Fields(display)
		if len(parts) > 0 {
			if token := letterToken(parts[len(parts)-1]); token != "" {
				name = token
			}
		}
	}

	year := "nd"
	if work.PublicationYear > 0 {
		year = strconv.Itoa(work.PublicationYear)
	}

	word := "untitled"
	for _, w := range strings.Fields(work.Title) {
		token := letterToken(w)
		if token == "" || keyStopwords[token] {
			continue
		}
		word = token
		break
	}

	return name + year + word
}

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func latexEscape(s string) string {
	return latexReplacer.Replace(s)
}

// ReconstructAbstract rebuilds plain text from an inverted index mapping
// each word to its positions. Long abstracts are truncated.
func ReconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}

	maxPos := 0
	for _, positions := range index {
		for _, p := range positions {
			if p > maxPos {
				maxPos = p
			}
		}
	}

	words := make([]string, maxPos+1)
	for word, positions := range index {
		for _, p := range positions {
			if p >= 0 && p <= maxPos {
				words[p] = word
			}
		}
	}

	abstract := strings.Join(words, " ")
	if runes := []rune(abstract); len(runes) > 1000 {
		abstract = string(runes[:997]) + "..."
	}
	return abstract
}

type bibField struct {
	name  string
	value string
}

// FormatWorkBibTeX renders one work as a BibTeX entry.
func FormatWorkBibTeX(w io.Writer, work *openalex.Work) error {
	entryType := entryTypes[work.Type]
	if entryType == "" {
		entryType = "misc"
	}

	var fields []bibField
	braced := func(name, value string) {
		if value != "" {
			fields = append(fields, bibField{name, "{" + value + "}"})
		}
	}
	plain := func(name, value string) {
		if value != "" {
			fields = append(fields, bibField{name, value})
		}
	}

	braced("title", latexEscape(work.Title))

	if len(work.Authorships) > 0 {
		var names []string
		for _, a := range work.Authorships {
			if a.Author.DisplayName != "" {
				names = append(names, latexEscape(a.Author.DisplayName))
			}
		}
		braced("author", strings.Join(names, " and "))
	}

	if work.PublicationYear > 0 {
		plain("year", strconv.Itoa(work.PublicationYear))
	}

	if work.PrimaryLocation != nil && work.PrimaryLocation.Source != nil {
		venue := work.PrimaryLocation.Source.DisplayName
		switch entryType {
		case "article":
			braced("journal", latexEscape(venue))
		case "inproceedings", "incollection":
			braced("booktitle", latexEscape(venue))
		default:
			braced("publisher", latexEscape(venue))
		}
	}

	plain("volume", work.Biblio.Volume)
	plain("number", work.Biblio.Issue)
	if work.Biblio.FirstPage != "" {
		pages := work.Biblio.FirstPage
		if work.Biblio.LastPage != "" {
			pages += "--" + work.Biblio.LastPage
		}
		plain("pages", pages)
	}

	if work.DOI != "" {
		plain("doi", strings.TrimPrefix(work.DOI, "https://doi.org/"))
	}
	plain("url", work.ID)

	if abstract := ReconstructAbstract(work.AbstractInvertedIndex); abstract != "" {
		braced("abstract", latexEscape(abstract))
	}

	fmt.Fprintf(w, "@%s{%s,\n", entryType, citationKey(work))
	for i, f := range fields {
		comma := ","
		if i == len(fields)-1 {
			comma = ""
		}
		fmt.Fprintf(w, "  %s = %s%s\n", f.name, f.value, comma)
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// FormatWorksBibTeX renders works as BibTeX entries separated by blank lines.
func FormatWorksBibTeX(w io.Writer, works []openalex.Work) error {
	for i := range works {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := FormatWorkBibTeX(w, &works[i]); err != nil {
			return err
		}
	}
	return nil
}
