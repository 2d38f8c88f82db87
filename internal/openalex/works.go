package openalex

import (
	"context"
	"strconv"
)

// SearchWorksOptions configures a works search. Zero values are omitted from
// the request; pointer fields distinguish "unset" from a zero value.
type SearchWorksOptions struct {
	Query        string
	Filter       string // raw OpenAlex filter string, passed through
	FromDate     string // YYYY-MM-DD
	ToDate       string // YYYY-MM-DD
	MinCitations *int
	OpenAccess   bool
	WorkType     string
	Sort         string // defaults to cited_by_count:desc
	Page         int
	PerPage      int
	Select       []string
	GroupBy      string
}

// GetWork fetches a single work by ID. The ID may be an OpenAlex ID or URL,
// a DOI, a PMID, or a MAG ID.
func (c *Client) GetWork(ctx context.Context, workID string, selects []string) (*Work, error) {
	id := NormalizeWorkID(workID)
	if selects == nil {
		selects = DefaultWorkFields
	}

	var work Work
	if err := c.getJSON(ctx, "/works/"+id, selectParams(selects), &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// SearchWorks searches for works.
func (c *Client) SearchWorks(ctx context.Context, opts SearchWorksOptions) (*WorksPage, error) {
	var extra []Filter
	if opts.FromDate != "" {
		extra = append(extra, Filter{"from_publication_date", opts.FromDate})
	}
	if opts.ToDate != "" {
		extra = append(extra, Filter{"to_publication_date", opts.ToDate})
	}
	if opts.MinCitations != nil {
		extra = append(extra, Filter{"cited_by_count", ">" + strconv.Itoa(*opts.MinCitations)})
	}
	if opts.OpenAccess {
		extra = append(extra, Filter{"is_oa", "true"})
	}
	if opts.WorkType != "" {
		extra = append(extra, Filter{"type", opts.WorkType})
	}

	sort := opts.Sort
	if sort == "" {
		sort = "cited_by_count:desc"
	}
	selects := opts.Select
	if selects == nil {
		selects = DefaultWorkFields
	}

	params := buildParams(queryOptions{
		filter:  opts.Filter,
		search:  opts.Query,
		sort:    sort,
		page:    opts.Page,
		perPage: opts.PerPage,
		selects: selects,
		groupBy: opts.GroupBy,
		extra:   extra,
	})

	var page WorksPage
	if err := c.getJSON(ctx, "/works", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Citations lists works that cite the given work, most cited first.
func (c *Client) Citations(ctx context.Context, workID string, page, perPage int, selects []string) (*WorksPage, error) {
	return c.linkedWorks(ctx, workID, "cites", page, perPage, selects)
}

// References lists works cited by the given work, most cited first.
func (c *Client) References(ctx context.Context, workID string, page, perPage int, selects []string) (*WorksPage, error) {
	return c.linkedWorks(ctx, workID, "cited_by", page, perPage, selects)
}

func (c *Client) linkedWorks(ctx context.Context, workID, relation string, page, perPage int, selects []string) (*WorksPage, error) {
	nativeID, err := c.resolveWorkID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if selects == nil {
		selects = DefaultWorkFields
	}

	params := buildParams(queryOptions{
		filter:  relation + ":" + nativeID,
		sort:    "cited_by_count:desc",
		page:    page,
		perPage: perPage,
		selects: selects,
	})

	var result WorksPage
	if err := c.getJSON(ctx, "/works", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// resolveWorkID normalizes a work ID and, when the result is not a native
// W-prefixed ID (a DOI or PMID, say), fetches the work to learn it. Filter
// clauses like cites: only accept native IDs.
func (c *Client) resolveWorkID(ctx context.Context, workID string) (string, error) {
	id := NormalizeWorkID(workID)
	if hasNativePrefix(id, 'W') {
		return id, nil
	}
	work, err := c.GetWork(ctx, id, []string{"id"})
	if err != nil {
		return "", err
	}
	return ShortID(work.ID), nil
}

// hasNativePrefix reports whether id starts with the entity's native
// OpenAlex ID letter, meaning no resolution round trip is needed.
func hasNativePrefix(id string, letter byte) bool {
	return len(id) > 0 && id[0] == letter
}
