package openalex

import "context"

// SearchOptions configures an entity search (authors, institutions, sources).
type SearchOptions struct {
	Query   string
	Filter  string
	Sort    string // defaults to cited_by_count:desc
	Page    int
	PerPage int
	Select  []string
	GroupBy string
}

// RelatedWorksOptions configures a listing of the works attached to an
// entity (an author's works, an institution's output, a journal's articles).
type RelatedWorksOptions struct {
	Filter   string
	FromDate string
	ToDate   string
	Sort     string // defaults to publication_date:desc
	Page     int
	PerPage  int
	Select   []string
	GroupBy  string
}

// GetAuthor fetches a single author by OpenAlex ID or ORCID.
func (c *Client) GetAuthor(ctx context.Context, authorID string, selects []string) (*Author, error) {
	id := NormalizeAuthorID(authorID)
	if selects == nil {
		selects = DefaultAuthorFields
	}

	var author Author
	if err := c.getJSON(ctx, "/authors/"+id, selectParams(selects), &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// SearchAuthors searches for authors by name.
func (c *Client) SearchAuthors(ctx context.Context, opts SearchOptions) (*AuthorsPage, error) {
	params := buildParams(searchQuery(opts, DefaultAuthorFields))

	var page AuthorsPage
	if err := c.getJSON(ctx, "/authors", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// AuthorWorks lists the works by an author, newest first.
func (c *Client) AuthorWorks(ctx context.Context, authorID string, opts RelatedWorksOptions) (*WorksPage, error) {
	nativeID, err := c.resolveAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return c.entityWorks(ctx, "authorships.author.id", nativeID, opts)
}

// resolveAuthorID returns the native A-prefixed ID, fetching the author when
// normalization yields an ORCID form.
func (c *Client) resolveAuthorID(ctx context.Context, authorID string) (string, error) {
	id := NormalizeAuthorID(authorID)
	if hasNativePrefix(id, 'A') {
		return id, nil
	}
	author, err := c.GetAuthor(ctx, id, []string{"id"})
	if err != nil {
		return "", err
	}
	return ShortID(author.ID), nil
}

// searchQuery translates SearchOptions into query options with the common
// defaults for entity searches.
func searchQuery(opts SearchOptions, defaultFields []string) queryOptions {
	sort := opts.Sort
	if sort == "" {
		sort = "cited_by_count:desc"
	}
	selects := opts.Select
	if selects == nil {
		selects = defaultFields
	}
	return queryOptions{
		filter:  opts.Filter,
		search:  opts.Query,
		sort:    sort,
		page:    opts.Page,
		perPage: opts.PerPage,
		selects: selects,
		groupBy: opts.GroupBy,
	}
}

// entityWorks lists works filtered to an entity via the given filter key.
func (c *Client) entityWorks(ctx context.Context, filterKey, nativeID string, opts RelatedWorksOptions) (*WorksPage, error) {
	extra := []Filter{{filterKey, nativeID}}
	if opts.FromDate != "" {
		extra = append(extra, Filter{"from_publication_date", opts.FromDate})
	}
	if opts.ToDate != "" {
		extra = append(extra, Filter{"to_publication_date", opts.ToDate})
	}

	sort := opts.Sort
	if sort == "" {
		sort = "publication_date:desc"
	}
	selects := opts.Select
	if selects == nil {
		selects = DefaultWorkFields
	}

	params := buildParams(queryOptions{
		filter:  opts.Filter,
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
