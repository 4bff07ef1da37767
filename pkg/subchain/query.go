package subchain

import (
	"net/url"
	"strconv"
)

// ListParams expresses the query options accepted by list endpoints.
// Filters map directly to Django-style query parameters, e.g.
// {"status": "active"} becomes ?status=active.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Ordering string
	Filters  map[string]string
}

// NewListParams creates an empty ListParams.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: make(map[string]string),
	}
}

// WithPage sets the page number.
func (p *ListParams) WithPage(page int) *ListParams {
	p.Page = page

	return p
}

// WithPageSize sets the page size.
func (p *ListParams) WithPageSize(size int) *ListParams {
	p.PageSize = size

	return p
}

// WithSearch sets the free-text search term.
func (p *ListParams) WithSearch(term string) *ListParams {
	p.Search = term

	return p
}

// WithOrdering sets the ordering expression (prefix with "-" for descending).
func (p *ListParams) WithOrdering(ordering string) *ListParams {
	p.Ordering = ordering

	return p
}

// WithFilter adds a filter parameter.
func (p *ListParams) WithFilter(key, value string) *ListParams {
	if p.Filters == nil {
		p.Filters = make(map[string]string)
	}

	p.Filters[key] = value

	return p
}

// ToValues converts the params to url.Values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}

	if p.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(p.PageSize))
	}

	if p.Search != "" {
		values.Set("search", p.Search)
	}

	if p.Ordering != "" {
		values.Set("ordering", p.Ordering)
	}

	for key, value := range p.Filters {
		values.Set(key, value)
	}

	return values
}
