package store

import (
	"sort"
	"strings"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
)

// snapshot is the immutable product list plus everything derived from it.
// Load and reload replace the whole snapshot at once so readers never see a
// product list that disagrees with the dealer index built from it.
type snapshot struct {
	products    []domain.Product
	searchText  []string         // parallel to products, lowercase blobs
	dealerIndex map[string][]int // dealer_code -> positions in products
	dealers     []domain.Dealer  // directory: dealers with >=1 product, sorted by code
}

func emptySnapshot() snapshot {
	return snapshot{
		products:    []domain.Product{},
		searchText:  []string{},
		dealerIndex: map[string][]int{},
		dealers:     []domain.Dealer{},
	}
}

// buildSnapshot derives the search blobs, the dealer index, and the dealer
// directory from the raw product list in a single pass. It never fails;
// missing fields degrade to empty strings, and products without a dealer_code
// land in the empty-string bucket, which is indexed but kept out of the
// public directory.
func buildSnapshot(products []domain.Product, names domain.DealerNames) snapshot {
	if products == nil {
		products = []domain.Product{}
	}

	searchText := make([]string, len(products))
	dealerIndex := make(map[string][]int)
	dealerData := make(map[string]domain.Dealer)

	for i, p := range products {
		searchText[i] = strings.ToLower(p.Name) + " " +
			strings.ToLower(p.ItemCode) + " " +
			strings.ToLower(p.Barcode)

		code := p.DealerCode
		if _, ok := dealerData[code]; !ok && code != "" {
			dealerData[code] = domain.Dealer{
				DealerCode: code,
				DealerName: names.Resolve(code),
			}
		}
		dealerIndex[code] = append(dealerIndex[code], i)
	}

	dealers := make([]domain.Dealer, 0, len(dealerData))
	for code, d := range dealerData {
		if len(dealerIndex[code]) > 0 {
			dealers = append(dealers, d)
		}
	}
	sort.Slice(dealers, func(i, j int) bool {
		return dealers[i].DealerCode < dealers[j].DealerCode
	})

	return snapshot{
		products:    products,
		searchText:  searchText,
		dealerIndex: dealerIndex,
		dealers:     dealers,
	}
}
