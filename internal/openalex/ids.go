package openalex

import "strings"

// Identifier normalization maps user-supplied IDs (DOIs, ORCIDs, RORs,
// ISSNs, PMIDs, URLs) to the form the OpenAlex API accepts in paths and
// filters. Normalization is pure and never fails: unrecognized input passes
// through unchanged and the API rejects it if malformed.

const (
	openalexURLPrefix = "https://openalex.org/"
	doiURLPrefix      = "https://doi.org/"
	orcidURLPrefix    = "https://orcid.org/"
)

// idRule is one step of an ordered rule chain: when match reports true,
// apply produces the normalized form and evaluation stops.
type idRule struct {
	match func(string) bool
	apply func(string) string
}

func applyRules(id string, rules []idRule) string {
	for _, r := range rules {
		if r.match(id) {
			return r.apply(id)
		}
	}
	return id
}

func stripOpenAlexURL(id string) string {
	return strings.TrimPrefix(id, openalexURLPrefix)
}

func lastPathSegment(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

var workIDRules = []idRule{
	{
		// Already an OpenAlex ID or URL.
		match: func(id string) bool {
			return strings.HasPrefix(id, "W") || strings.HasPrefix(id, openalexURLPrefix)
		},
		apply: stripOpenAlexURL,
	},
	{
		// DOI, bare or prefixed, possibly as a URL.
		match: func(id string) bool {
			return strings.HasPrefix(id, "10.") || strings.HasPrefix(id, "doi:")
		},
		apply: func(id string) string {
			doi := strings.TrimPrefix(id, "doi:")
			doi = strings.TrimPrefix(doi, doiURLPrefix)
			return "doi:" + doi
		},
	},
	{
		match: func(id string) bool { return hasPrefixFold(id, "pmid:") },
		apply: strings.ToLower,
	},
	{
		match: func(id string) bool { return hasPrefixFold(id, "mag:") },
		apply: strings.ToLower,
	},
	{
		// OpenAlex URL in some other shape.
		match: func(id string) bool { return strings.Contains(id, "openalex.org") },
		apply: lastPathSegment,
	},
}

// NormalizeWorkID normalizes a work identifier to OpenAlex format.
func NormalizeWorkID(id string) string {
	return applyRules(id, workIDRules)
}

var authorIDRules = []idRule{
	{
		match: func(id string) bool {
			return strings.HasPrefix(id, "A") || strings.HasPrefix(id, openalexURLPrefix)
		},
		apply: stripOpenAlexURL,
	},
	{
		// ORCID as URL, bare (0000-...), or prefixed.
		match: func(id string) bool {
			return strings.Contains(id, "orcid.org") ||
				strings.HasPrefix(id, "0000-") ||
				strings.HasPrefix(id, "orcid:")
		},
		apply: func(id string) string {
			orcid := strings.TrimPrefix(id, orcidURLPrefix)
			orcid = strings.TrimPrefix(orcid, "orcid:")
			return "orcid:" + orcid
		},
	},
}

// NormalizeAuthorID normalizes an author identifier to OpenAlex format.
func NormalizeAuthorID(id string) string {
	return applyRules(id, authorIDRules)
}

var institutionIDRules = []idRule{
	{
		match: func(id string) bool {
			return strings.HasPrefix(id, "I") || strings.HasPrefix(id, openalexURLPrefix)
		},
		apply: stripOpenAlexURL,
	},
	{
		match: func(id string) bool { return strings.Contains(id, "ror.org") },
		apply: func(id string) string { return "ror:" + lastPathSegment(id) },
	},
	{
		match: func(id string) bool { return strings.HasPrefix(id, "ror:") },
		apply: func(id string) string { return id },
	},
}

// NormalizeInstitutionID normalizes an institution identifier to OpenAlex format.
func NormalizeInstitutionID(id string) string {
	return applyRules(id, institutionIDRules)
}

var sourceIDRules = []idRule{
	{
		match: func(id string) bool {
			return strings.HasPrefix(id, "S") || strings.HasPrefix(id, openalexURLPrefix)
		},
		apply: stripOpenAlexURL,
	},
	{
		// ISSN shape: NNNN-NNNN.
		match: func(id string) bool { return len(id) == 9 && id[4] == '-' },
		apply: func(id string) string { return "issn:" + id },
	},
	{
		match: func(id string) bool { return hasPrefixFold(id, "issn:") },
		apply: strings.ToLower,
	},
}

// NormalizeSourceID normalizes a source (journal/venue) identifier to
// OpenAlex format.
func NormalizeSourceID(id string) string {
	return applyRules(id, sourceIDRules)
}
