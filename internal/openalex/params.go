package openalex

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter is one key:value clause of the OpenAlex filter parameter. Clauses
// with an empty value are skipped. Order is preserved as given.
type Filter struct {
	Key   string
	Value string
}

// queryOptions collects the inputs to buildParams. Zero values are omitted
// from the result.
type queryOptions struct {
	filter  string   // explicit filter string, used verbatim
	search  string   // free-text search term
	sort    string   // sort specification
	page    int
	perPage int
	selects []string // field selection, ignored when groupBy is set
	groupBy string
	extra   []Filter // additional filter clauses, appended after filter
}

// groupSorts is the only sort spec OpenAlex accepts for grouped queries.
var groupSorts = map[string]bool{
	"key":        true,
	"count":      true,
	"count:desc": true,
	"count:asc":  true,
	"key:desc":   true,
	"key:asc":    true,
}

// buildParams assembles query parameters for list requests. Invariants:
// filter clauses concatenate into a single comma-joined parameter, group_by
// suppresses select, and a grouped sort outside the allowed set falls back
// to count:desc.
func buildParams(opts queryOptions) url.Values {
	params := url.Values{}

	var filters []string
	if opts.filter != "" {
		filters = append(filters, opts.filter)
	}
	for _, f := range opts.extra {
		if f.Value != "" {
			filters = append(filters, f.Key+":"+f.Value)
		}
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}

	if opts.search != "" {
		params.Set("search", opts.search)
	}

	if opts.groupBy != "" {
		// group_by does not work with select; sort must be key or count.
		params.Set("group_by", opts.groupBy)
		if groupSorts[opts.sort] {
			params.Set("sort", opts.sort)
		} else {
			params.Set("sort", "count:desc")
		}
	} else {
		if opts.sort != "" {
			params.Set("sort", opts.sort)
		}
		if len(opts.selects) > 0 {
			params.Set("select", strings.Join(opts.selects, ","))
		}
	}

	if opts.page > 0 {
		params.Set("page", strconv.Itoa(opts.page))
	}
	if opts.perPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.perPage))
	}

	return params
}

// selectParams builds the parameter set for single-entity GETs: only the
// field selection.
func selectParams(fields []string) url.Values {
	params := url.Values{}
	params.Set("select", strings.Join(fields, ","))
	return params
}
