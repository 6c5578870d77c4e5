package domain

import "strconv"

// PriceEntry maps synthetic price keys ("price_1", "price_2", ...) to values.
// Only the first entry of a product's Prices slice is live; later entries are
// historical and never served directly.
type PriceEntry map[string]float64

// Product is a catalog record as it appears in the source document. The
// derived lowercase search blob is kept in the store snapshot, not on the
// product, so it can never leak into API responses.
type Product struct {
	ItemCode   string       `json:"item_code"`
	Name       string       `json:"name"`
	Barcode    string       `json:"barcode,omitempty"`
	DealerCode string       `json:"dealer_code,omitempty"`
	Unit       string       `json:"unit,omitempty"`
	Prices     []PriceEntry `json:"prices"`
}

// Clone returns a deep copy of the product, including its price maps. Query
// results are cloned so encoding can happen outside the store lock.
func (p Product) Clone() Product {
	out := p
	if p.Prices != nil {
		out.Prices = make([]PriceEntry, len(p.Prices))
		for i, entry := range p.Prices {
			cp := make(PriceEntry, len(entry))
			for k, v := range entry {
				cp[k] = v
			}
			out.Prices[i] = cp
		}
	}
	return out
}

// PriceKey builds the synthetic map key for a 1-based price index.
func PriceKey(index int) string {
	return "price_" + strconv.Itoa(index)
}

// UpdatedPrice describes a successful price mutation.
type UpdatedPrice struct {
	ItemCode   string  `json:"item_code"`
	PriceIndex int     `json:"price_index"`
	NewPrice   float64 `json:"new_price"`
}
