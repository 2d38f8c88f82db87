package openalex

import "context"

// GetInstitution fetches a single institution by OpenAlex ID or ROR.
func (c *Client) GetInstitution(ctx context.Context, institutionID string, selects []string) (*Institution, error) {
	id := NormalizeInstitutionID(institutionID)
	if selects == nil {
		selects = DefaultInstitutionFields
	}

	var inst Institution
	if err := c.getJSON(ctx, "/institutions/"+id, selectParams(selects), &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// SearchInstitutions searches for institutions by name.
func (c *Client) SearchInstitutions(ctx context.Context, opts SearchOptions) (*InstitutionsPage, error) {
	params := buildParams(searchQuery(opts, DefaultInstitutionFields))

	var page InstitutionsPage
	if err := c.getJSON(ctx, "/institutions", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// InstitutionWorks lists works affiliated with an institution, newest first.
func (c *Client) InstitutionWorks(ctx context.Context, institutionID string, opts RelatedWorksOptions) (*WorksPage, error) {
	nativeID, err := c.resolveInstitutionID(ctx, institutionID)
	if err != nil {
		return nil, err
	}
	return c.entityWorks(ctx, "authorships.institutions.id", nativeID, opts)
}

// resolveInstitutionID returns the native I-prefixed ID, fetching the
// institution when normalization yields a ROR form.
func (c *Client) resolveInstitutionID(ctx context.Context, institutionID string) (string, error) {
	id := NormalizeInstitutionID(institutionID)
	if hasNativePrefix(id, 'I') {
		return id, nil
	}
	inst, err := c.GetInstitution(ctx, id, []string{"id"})
	if err != nil {
		return "", err
	}
	return ShortID(inst.ID), nil
}
