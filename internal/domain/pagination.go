package domain

// PageRequest carries the pagination parameters for listing endpoints.
// Page and PerPage are both one-based and must be at least 1; a PerPage
// of 0 is rejected outright rather than silently defaulted, so the page
// count math below can never divide by zero.
type PageRequest struct {
	Page    int `json:"page"    validate:"required,min=1"`
	PerPage int `json:"per_page" validate:"required,min=1"`
}

// Validate checks that both pagination parameters are at least 1.
func (r PageRequest) Validate() error {
	if r.Page < 1 || r.PerPage < 1 {
		return ErrInvalidPagination
	}
	return nil
}

// Offset derives the number of rows to skip for this page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Page is one page of results plus the totals needed to render pagers.
// Pages is always ceil(Count/PerPage), which yields 0 for an empty result
// set.
type Page[T any] struct {
	Count   int `json:"count"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Pages   int `json:"pages"`
	Items   []T `json:"items"`
}

// NewPage assembles a Page from a validated request, the total row count
// and the items fetched for the requested window.
func NewPage[T any](req PageRequest, count int, items []T) *Page[T] {
	if items == nil {
		items = []T{}
	}

	return &Page[T]{
		Count:   count,
		Page:    req.Page,
		PerPage: req.PerPage,
		Pages:   (count + req.PerPage - 1) / req.PerPage,
		Items:   items,
	}
}
