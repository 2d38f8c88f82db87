package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/openalexq/openalexq/internal/openalex"
)

// --- Styles ---

var (
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// truncate cuts a string to maxLen runes, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-1]) + "…"
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// authorNames joins up to max author display names, noting the remainder.
func authorNames(authorships []openalex.Authorship, max int) string {
	var names []string
	for _, a := range authorships {
		if len(names) == max {
			break
		}
		if a.Author.DisplayName != "" {
			names = append(names, a.Author.DisplayName)
		}
	}
	result := strings.Join(names, ", ")
	if remaining := len(authorships) - max; remaining > 0 {
		result += fmt.Sprintf(" +%d", remaining)
	}
	return result
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})
}

func printMetaFooter(w io.Writer, meta *openalex.Meta, shown int) {
	if meta == nil || meta.Count == 0 {
		return
	}
	page := meta.Page
	if page == 0 {
		page = 1
	}
	fmt.Fprintln(w, dim.Render(fmt.Sprintf("Showing %d of %s results (page %d)",
		shown, formatCount(meta.Count), page)))
}

// --- List tables ---

func formatWorksHuman(w io.Writer, works []openalex.Work, meta *openalex.Meta) error {
	if len(works) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	var rows [][]string
	for _, work := range works {
		year := "-"
		if work.PublicationYear > 0 {
			year = strconv.Itoa(work.PublicationYear)
		}
		rows = append(rows, []string{
			cyan.Render(openalex.ShortID(work.ID)),
			year,
			formatCount(work.CitedByCount),
			truncate(work.Title, 50),
			truncate(authorNames(work.Authorships, 3), 30),
		})
	}

	t := newTable("ID", "Year", "Cited", "Title", "Authors").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	printMetaFooter(w, meta, len(works))
	return nil
}

func formatAuthorsHuman(w io.Writer, authors []openalex.Author, meta *openalex.Meta) error {
	if len(authors) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	var rows [][]string
	for _, a := range authors {
		hIndex := "-"
		if a.SummaryStats != nil && a.SummaryStats.HIndex != nil {
			hIndex = strconv.Itoa(*a.SummaryStats.HIndex)
		}

		affiliation := "-"
		if len(a.LastKnownInstitutions) > 0 {
			var names []string
			for _, inst := range a.LastKnownInstitutions {
				if len(names) == 2 {
					break
				}
				if inst.DisplayName != "" {
					names = append(names, inst.DisplayName)
				}
			}
			affiliation = strings.Join(names, ", ")
			if remaining := len(a.LastKnownInstitutions) - 2; remaining > 0 {
				affiliation += fmt.Sprintf(" +%d", remaining)
			}
		}

		rows = append(rows, []string{
			cyan.Render(openalex.ShortID(a.ID)),
			truncate(a.DisplayName, 30),
			formatCount(a.WorksCount),
			formatCount(a.CitedByCount),
			hIndex,
			truncate(affiliation, 35),
		})
	}

	t := newTable("ID", "Name", "Works", "Cited", "h-index", "Affiliations").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	printMetaFooter(w, meta, len(authors))
	return nil
}

func formatInstitutionsHuman(w io.Writer, institutions []openalex.Institution, meta *openalex.Meta) error {
	if len(institutions) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	var rows [][]string
	for _, inst := range institutions {
		country := inst.CountryCode
		if country == "" {
			country = "-"
		}
		instType := inst.Type
		if instType == "" {
			instType = "-"
		}
		rows = append(rows, []string{
			cyan.Render(openalex.ShortID(inst.ID)),
			truncate(inst.DisplayName, 40),
			country,
			truncate(instType, 15),
			formatCount(inst.WorksCount),
			formatCount(inst.CitedByCount),
		})
	}

	t := newTable("ID", "Name", "Country", "Type", "Works", "Cited").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	printMetaFooter(w, meta, len(institutions))
	return nil
}

func formatSourcesHuman(w io.Writer, sources []openalex.Source, meta *openalex.Meta) error {
	if len(sources) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	var rows [][]string
	for _, s := range sources {
		sourceType := s.Type
		if sourceType == "" {
			sourceType = "-"
		}
		oa := "No"
		if s.IsOA {
			oa = "Yes"
		}
		rows = append(rows, []string{
			cyan.Render(openalex.ShortID(s.ID)),
			truncate(s.DisplayName, 45),
			truncate(sourceType, 12),
			oa,
			formatCount(s.WorksCount),
			formatCount(s.CitedByCount),
		})
	}

	t := newTable("ID", "Name", "Type", "OA", "Works", "Cited").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	printMetaFooter(w, meta, len(sources))
	return nil
}

func formatGroupsHuman(w io.Writer, groups []openalex.Group, groupBy string, meta *openalex.Meta) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintln(w, bold.Render("Grouped by: "+groupBy))

	var rows [][]string
	for _, g := range groups {
		name := g.KeyDisplayName
		if name == "" {
			name = g.Key
		}
		rows = append(rows, []string{
			dim.Render(g.Key),
			truncate(name, 50),
			formatCount(g.Count),
		})
	}

	t := newTable("Key", "Name", "Count").Rows(rows...)
	fmt.Fprintln(w, t.Render())

	if meta != nil {
		groupsCount := meta.GroupsCount
		if groupsCount == 0 {
			groupsCount = len(groups)
		}
		fmt.Fprintln(w, dim.Render(fmt.Sprintf("Showing %d groups (%s total entities)",
			groupsCount, formatCount(meta.Count))))
	}
	return nil
}

// --- Detail panels ---

func formatWorkDetailHuman(w io.Writer, work *openalex.Work) error {
	title := work.Title
	if title == "" {
		title = "Untitled"
	}

	var lines []string
	lines = append(lines, bold.Render(truncate(title, 70)))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("ID:")+" "+cyan.Render(openalex.ShortID(work.ID)))

	if work.DOI != "" {
		lines = append(lines, labelStyle.Render("DOI:")+" "+yellow.Render(work.DOI))
	}

	year := "-"
	if work.PublicationYear > 0 {
		year = strconv.Itoa(work.PublicationYear)
	}
	workType := work.Type
	if workType == "" {
		workType = "-"
	}
	lines = append(lines, labelStyle.Render("Year:")+" "+year)
	lines = append(lines, labelStyle.Render("Type:")+" "+workType)
	lines = append(lines, labelStyle.Render("Citations:")+" "+formatCount(work.CitedByCount))

	oa := "No"
	if work.OpenAccess.IsOA {
		oa = "Yes"
	}
	lines = append(lines, labelStyle.Render("Open Access:")+" "+oa)
	if work.OpenAccess.OAURL != "" {
		lines = append(lines, labelStyle.Render("OA URL:")+" "+work.OpenAccess.OAURL)
	}

	if work.PrimaryLocation != nil && work.PrimaryLocation.Source != nil &&
		work.PrimaryLocation.Source.DisplayName != "" {
		lines = append(lines, labelStyle.Render("Source:")+" "+work.PrimaryLocation.Source.DisplayName)
	}

	if len(work.Authorships) > 0 {
		authors := authorNames(work.Authorships, 10)
		lines = append(lines, labelStyle.Render("Authors:")+" "+authors)
	}

	if abstract := ReconstructAbstract(work.AbstractInvertedIndex); abstract != "" {
		lines = append(lines, "")
		lines = append(lines, labelStyle.Render("Abstract:"))
		if runes := []rune(abstract); len(runes) > 500 {
			abstract = string(runes[:500]) + "..."
		}
		lines = append(lines, abstract)
	}

	if len(work.Topics) > 0 {
		var names []string
		for _, t := range work.Topics {
			if len(names) == 5 {
				break
			}
			if t.DisplayName != "" {
				names = append(names, t.DisplayName)
			}
		}
		if len(names) > 0 {
			lines = append(lines, "")
			lines = append(lines, labelStyle.Render("Topics:")+" "+strings.Join(names, ", "))
		}
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func formatAuthorDetailHuman(w io.Writer, author *openalex.Author) error {
	name := author.DisplayName
	if name == "" {
		name = "Unknown"
	}

	var lines []string
	lines = append(lines, bold.Render(name))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("ID:")+" "+cyan.Render(openalex.ShortID(author.ID)))

	if author.ORCID != "" {
		lines = append(lines, labelStyle.Render("ORCID:")+" "+author.ORCID)
	}
	lines = append(lines, labelStyle.Render("Works:")+" "+formatCount(author.WorksCount))
	lines = append(lines, labelStyle.Render("Citations:")+" "+formatCount(author.CitedByCount))

	if stats := author.SummaryStats; stats != nil {
		if stats.HIndex != nil {
			lines = append(lines, labelStyle.Render("h-index:")+" "+strconv.Itoa(*stats.HIndex))
		}
		if stats.I10Index != nil {
			lines = append(lines, labelStyle.Render("i10-index:")+" "+strconv.Itoa(*stats.I10Index))
		}
	}

	if len(author.LastKnownInstitutions) > 0 {
		lines = append(lines, "")
		lines = append(lines, labelStyle.Render("Affiliations:"))
		for i, inst := range author.LastKnownInstitutions {
			if i == 5 {
				break
			}
			if inst.DisplayName == "" {
				continue
			}
			entry := "  - " + inst.DisplayName
			if inst.CountryCode != "" {
				entry += " (" + inst.CountryCode + ")"
			}
			lines = append(lines, entry)
		}
	}

	if len(author.Topics) > 0 {
		var names []string
		for _, t := range author.Topics {
			if len(names) == 5 {
				break
			}
			if t.DisplayName != "" {
				names = append(names, t.DisplayName)
			}
		}
		if len(names) > 0 {
			lines = append(lines, "")
			lines = append(lines, labelStyle.Render("Topics:")+" "+strings.Join(names, ", "))
		}
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func formatInstitutionDetailHuman(w io.Writer, inst *openalex.Institution) error {
	name := inst.DisplayName
	if name == "" {
		name = "Unknown"
	}

	var lines []string
	lines = append(lines, bold.Render(name))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("ID:")+" "+cyan.Render(openalex.ShortID(inst.ID)))

	if inst.ROR != "" {
		lines = append(lines, labelStyle.Render("ROR:")+" "+inst.ROR)
	}

	country := inst.CountryCode
	if country == "" {
		country = "-"
	}
	instType := inst.Type
	if instType == "" {
		instType = "-"
	}
	lines = append(lines, labelStyle.Render("Country:")+" "+country)
	lines = append(lines, labelStyle.Render("Type:")+" "+instType)
	lines = append(lines, labelStyle.Render("Works:")+" "+formatCount(inst.WorksCount))
	lines = append(lines, labelStyle.Render("Citations:")+" "+formatCount(inst.CitedByCount))

	if inst.SummaryStats != nil && inst.SummaryStats.HIndex != nil {
		lines = append(lines, labelStyle.Render("h-index:")+" "+strconv.Itoa(*inst.SummaryStats.HIndex))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return nil
}

func formatSourceDetailHuman(w io.Writer, source *openalex.Source) error {
	name := source.DisplayName
	if name == "" {
		name = "Unknown"
	}

	var lines []string
	lines = append(lines, bold.Render(name))
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("ID:")+" "+cyan.Render(openalex.ShortID(source.ID)))

	if source.ISSNL != "" {
		lines = append(lines, labelStyle.Render("ISSN-L:")+" "+source.ISSNL)
	}

	sourceType := source.Type
	if sourceType == "" {
		sourceType = "-"
	}
	oa := "No"
	if source.IsOA {
		oa = "Yes"
	}
	lines = append(lines, labelStyle.Render("Type:")+" "+sourceType)
	lines = append(lines, labelStyle.Render("Open Access:")+" "+oa)
	lines = append(lines, labelStyle.Render("Works:")+" "+formatCount(source.WorksCount))
	lines = append(lines, labelStyle.Render("Citations:")+" "+formatCount(source.CitedByCount))

	if source.SummaryStats != nil && source.SummaryStats.HIndex != nil {
		lines = append(lines, labelStyle.Render("h-index:")+" "+strconv.Itoa(*source.SummaryStats.HIndex))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
	return nil
}

// FormatErrorHuman writes a human-readable error message to w.
func FormatErrorHuman(w io.Writer, err error) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	fmt.Fprintf(w, "%s %v\n", red.Render("Error:"), err)
	if suggestion := openalex.Suggestion(err); suggestion != "" {
		fmt.Fprintln(w, dim.Render(suggestion))
	}
}
