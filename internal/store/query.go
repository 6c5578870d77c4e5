package store

import (
	"strings"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
)

// Products returns one page of products matching the query, plus the
// pagination envelope. The dealer filter narrows via the dealer index before
// the substring search runs, so a dealer-scoped search only scans that
// dealer's products. The returned page is deep-copied under the read lock so
// callers can encode it without racing the price writer.
func (s *Store) Products(q domain.ProductQuery) ([]domain.Product, domain.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// positions stays nil while no filter has been applied; nil means
	// "the whole product list" without materializing all positions.
	var positions []int
	filtered := false

	if q.DealerCode != "" {
		positions = s.snap.dealerIndex[q.DealerCode] // nil for unknown dealers
		filtered = true
	}

	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		var matched []int
		if filtered {
			for _, i := range positions {
				if strings.Contains(s.snap.searchText[i], needle) {
					matched = append(matched, i)
				}
			}
		} else {
			for i := range s.snap.searchText {
				if strings.Contains(s.snap.searchText[i], needle) {
					matched = append(matched, i)
				}
			}
		}
		positions = matched
		filtered = true
	}

	total := len(s.snap.products)
	if filtered {
		total = len(positions)
	}

	pg := domain.NewPagination("products", q.Page, q.PerPage, total)

	start := (q.Page - 1) * q.PerPage
	if start >= total {
		return []domain.Product{}, pg
	}
	end := start + q.PerPage
	if end > total {
		end = total
	}

	page := make([]domain.Product, 0, end-start)
	if filtered {
		for _, i := range positions[start:end] {
			page = append(page, s.snap.products[i].Clone())
		}
	} else {
		for i := start; i < end; i++ {
			page = append(page, s.snap.products[i].Clone())
		}
	}
	return page, pg
}

// Dealers returns the full dealer directory as a single page.
func (s *Store) Dealers() ([]domain.Dealer, domain.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dealers := make([]domain.Dealer, len(s.snap.dealers))
	copy(dealers, s.snap.dealers)

	n := len(dealers)
	return dealers, domain.NewPagination("dealers", 1, n, n)
}
