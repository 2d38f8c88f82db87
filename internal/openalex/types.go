package openalex

// Default fields requested for each entity type. Keeping the select list
// tight keeps responses small; callers can override per call.
var (
	DefaultWorkFields = []string{
		"id",
		"doi",
		"title",
		"publication_year",
		"publication_date",
		"type",
		"cited_by_count",
		"open_access",
		"authorships",
		"primary_location",
		"abstract_inverted_index",
		"topics",
		"biblio",
	}

	DefaultAuthorFields = []string{
		"id",
		"orcid",
		"display_name",
		"works_count",
		"cited_by_count",
		"summary_stats",
		"affiliations",
		"last_known_institutions",
		"topics",
	}

	DefaultInstitutionFields = []string{
		"id",
		"ror",
		"display_name",
		"country_code",
		"type",
		"works_count",
		"cited_by_count",
		"summary_stats",
	}

	DefaultSourceFields = []string{
		"id",
		"issn_l",
		"display_name",
		"type",
		"works_count",
		"cited_by_count",
		"is_oa",
		"summary_stats",
	}

	// BibTeXWorkFields is the reduced set needed to render a citation.
	BibTeXWorkFields = []string{
		"id",
		"doi",
		"title",
		"publication_year",
		"type",
		"authorships",
		"primary_location",
		"biblio",
		"abstract_inverted_index",
	}
)

// Meta is the pagination envelope returned alongside list results.
type Meta struct {
	Count       int `json:"count"`
	Page        int `json:"page,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
	GroupsCount int `json:"groups_count,omitempty"`
}

// Group is one bucket of a group_by aggregation.
type Group struct {
	Key            string `json:"key"`
	KeyDisplayName string `json:"key_display_name"`
	Count          int    `json:"count"`
}

// Work is an OpenAlex work (paper, book, dataset, ...).
type Work struct {
	ID                    string           `json:"id"`
	DOI                   string           `json:"doi,omitempty"`
	Title                 string           `json:"title"`
	PublicationYear       int              `json:"publication_year,omitempty"`
	PublicationDate       string           `json:"publication_date,omitempty"`
	Type                  string           `json:"type,omitempty"`
	CitedByCount          int              `json:"cited_by_count"`
	OpenAccess            OpenAccess       `json:"open_access,omitempty"`
	Authorships           []Authorship     `json:"authorships,omitempty"`
	PrimaryLocation       *Location        `json:"primary_location,omitempty"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index,omitempty"`
	Topics                []Topic          `json:"topics,omitempty"`
	Biblio                Biblio           `json:"biblio,omitempty"`
}

// OpenAccess describes the open-access status of a work.
type OpenAccess struct {
	IsOA     bool   `json:"is_oa"`
	OAStatus string `json:"oa_status,omitempty"`
	OAURL    string `json:"oa_url,omitempty"`
}

// Authorship links an author to a work.
type Authorship struct {
	Author       AuthorRef `json:"author"`
	Institutions []Entity  `json:"institutions,omitempty"`
}

// AuthorRef is the embedded author record inside an authorship.
type AuthorRef struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
	ORCID       string `json:"orcid,omitempty"`
}

// Entity is a minimal id/name pair used inside nested records.
type Entity struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Location is a hosting venue for a work.
type Location struct {
	Source *Entity `json:"source,omitempty"`
}

// Topic is a subject classification.
type Topic struct {
	DisplayName string `json:"display_name"`
}

// Biblio carries volume/issue/page metadata.
type Biblio struct {
	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	FirstPage string `json:"first_page,omitempty"`
	LastPage  string `json:"last_page,omitempty"`
}

// SummaryStats holds citation-derived indices. Pointers distinguish a zero
// index from an absent field.
type SummaryStats struct {
	HIndex   *int `json:"h_index,omitempty"`
	I10Index *int `json:"i10_index,omitempty"`
}

// Author is an OpenAlex author.
type Author struct {
	ID                    string        `json:"id"`
	ORCID                 string        `json:"orcid,omitempty"`
	DisplayName           string        `json:"display_name"`
	WorksCount            int           `json:"works_count"`
	CitedByCount          int           `json:"cited_by_count"`
	SummaryStats          *SummaryStats `json:"summary_stats,omitempty"`
	Affiliations          []Affiliation `json:"affiliations,omitempty"`
	LastKnownInstitutions []Entity      `json:"last_known_institutions,omitempty"`
	Topics                []Topic       `json:"topics,omitempty"`
}

// Affiliation ties an author to an institution across publication years.
type Affiliation struct {
	Institution Entity `json:"institution"`
	Years       []int  `json:"years,omitempty"`
}

// Institution is an OpenAlex institution.
type Institution struct {
	ID           string        `json:"id"`
	ROR          string        `json:"ror,omitempty"`
	DisplayName  string        `json:"display_name"`
	CountryCode  string        `json:"country_code,omitempty"`
	Type         string        `json:"type,omitempty"`
	WorksCount   int           `json:"works_count"`
	CitedByCount int           `json:"cited_by_count"`
	SummaryStats *SummaryStats `json:"summary_stats,omitempty"`
}

// Source is an OpenAlex source (journal or venue).
type Source struct {
	ID           string        `json:"id"`
	ISSNL        string        `json:"issn_l,omitempty"`
	DisplayName  string        `json:"display_name"`
	Type         string        `json:"type,omitempty"`
	WorksCount   int           `json:"works_count"`
	CitedByCount int           `json:"cited_by_count"`
	IsOA         bool          `json:"is_oa"`
	SummaryStats *SummaryStats `json:"summary_stats,omitempty"`
}

// WorksPage is one page of a works listing. Groups is populated instead of
// Results for group_by queries.
type WorksPage struct {
	Meta    Meta    `json:"meta"`
	Results []Work  `json:"results"`
	Groups  []Group `json:"group_by,omitempty"`
}

// AuthorsPage is one page of an authors listing.
type AuthorsPage struct {
	Meta    Meta     `json:"meta"`
	Results []Author `json:"results"`
	Groups  []Group  `json:"group_by,omitempty"`
}

// InstitutionsPage is one page of an institutions listing.
type InstitutionsPage struct {
	Meta    Meta          `json:"meta"`
	Results []Institution `json:"results"`
	Groups  []Group       `json:"group_by,omitempty"`
}

// SourcesPage is one page of a sources listing.
type SourcesPage struct {
	Meta    Meta     `json:"meta"`
	Results []Source `json:"results"`
	Groups  []Group  `json:"group_by,omitempty"`
}

// ShortID strips the OpenAlex URL prefix from a full entity ID.
func ShortID(fullID string) string {
	return stripOpenAlexURL(fullID)
}
