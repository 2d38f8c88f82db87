package openalex

import "context"

// GetSource fetches a single source (journal/venue) by OpenAlex ID or ISSN.
func (c *Client) GetSource(ctx context.Context, sourceID string, selects []string) (*Source, error) {
	id := NormalizeSourceID(sourceID)
	if selects == nil {
		selects = DefaultSourceFields
	}

	var source Source
	if err := c.getJSON(ctx, "/sources/"+id, selectParams(selects), &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// SearchSources searches for sources by name.
func (c *Client) SearchSources(ctx context.Context, opts SearchOptions) (*SourcesPage, error) {
	params := buildParams(searchQuery(opts, DefaultSourceFields))

	var page SourcesPage
	if err := c.getJSON(ctx, "/sources", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SourceWorks lists works published in a source, newest first.
func (c *Client) SourceWorks(ctx context.Context, sourceID string, opts RelatedWorksOptions) (*WorksPage, error) {
	nativeID, err := c.resolveSourceID(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return c.entityWorks(ctx, "primary_location.source.id", nativeID, opts)
}

// resolveSourceID returns the native S-prefixed ID, fetching the source when
// normalization yields an ISSN form.
func (c *Client) resolveSourceID(ctx context.Context, sourceID string) (string, error) {
	id := NormalizeSourceID(sourceID)
	if hasNativePrefix(id, 'S') {
		return id, nil
	}
	source, err := c.GetSource(ctx, id, []string{"id"})
	if err != nil {
		return "", err
	}
	return ShortID(source.ID), nil
}
