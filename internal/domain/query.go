package domain

// ProductQuery holds sanitized filter parameters for a product listing.
// Page and PerPage are always positive; empty strings mean "no filter".
type ProductQuery struct {
	DealerCode string
	Search     string
	Page       int
	PerPage    int
}

// Pagination is the envelope attached to every list response. NextPage is
// null on the last page and PrevPage is null on the first.
type Pagination struct {
	Resource   string `json:"resource"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	NextPage   *int   `json:"next_page"`
	PrevPage   *int   `json:"prev_page"`
}

// NewPagination computes the envelope for a filtered subset of size total.
// total_pages is never below 1, so a page past the end still reports a
// coherent envelope. A non-positive perPage (the empty dealer directory)
// collapses to a single page.
func NewPagination(resource string, page, perPage, total int) Pagination {
	totalPages := 1
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
		if totalPages < 1 {
			totalPages = 1
		}
	}

	p := Pagination{
		Resource:   resource,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
