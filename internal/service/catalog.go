package service

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/store"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/apperrors"
)

const defaultPerPage = 10

// Catalog implements the query and mutation operations on top of the store.
type Catalog struct {
	store      *store.Store
	maxPerPage int
	log        *slog.Logger
}

// NewCatalog creates the catalog service. maxPerPage caps the per_page query
// parameter.
func NewCatalog(st *store.Store, maxPerPage int, log *slog.Logger) *Catalog {
	return &Catalog{
		store:      st,
		maxPerPage: maxPerPage,
		log:        log,
	}
}

// Ready reports whether the first catalog load has completed.
func (c *Catalog) Ready() bool {
	return c.store.Ready()
}

// ProductsRequest carries the raw, unsanitized query parameters of a product
// listing request.
type ProductsRequest struct {
	DealerCode string
	Search     string
	Page       string
	PerPage    string
}

// ProductList is a page of products with its pagination envelope.
type ProductList struct {
	Pagination domain.Pagination `json:"pagination"`
	Data       []domain.Product  `json:"data"`
}

// DealerList is the single-page dealer directory.
type DealerList struct {
	Pagination domain.Pagination `json:"pagination"`
	Data       []domain.Dealer   `json:"data"`
}

// Products sanitizes the request parameters and runs the catalog query.
// Malformed paging values degrade to defaults; unknown or absent filter
// values are never errors.
func (c *Catalog) Products(req ProductsRequest) (ProductList, error) {
	if !c.store.Ready() {
		return ProductList{}, apperrors.NotReady()
	}

	page, err := strconv.Atoi(strings.TrimSpace(req.Page))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(strings.TrimSpace(req.PerPage))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > c.maxPerPage {
		perPage = c.maxPerPage
	}

	q := domain.ProductQuery{
		DealerCode: strings.TrimSpace(req.DealerCode),
		Search:     strings.TrimSpace(req.Search),
		Page:       page,
		PerPage:    perPage,
	}

	data, pg := c.store.Products(q)
	return ProductList{Pagination: pg, Data: data}, nil
}

// Dealers returns the public dealer directory.
func (c *Catalog) Dealers() (DealerList, error) {
	if !c.store.Ready() {
		return DealerList{}, apperrors.NotReady()
	}
	data, pg := c.store.Dealers()
	return DealerList{Pagination: pg, Data: data}, nil
}

// SetPrice applies a single price update. The validation sequence and its
// failure modes are fixed: missing fields, unknown product, product without
// prices, unparseable or out-of-range index, absent price key, unparseable
// or negative value. Indices are never auto-created, only overwritten.
func (c *Catalog) SetPrice(itemCode string, priceIndex, price *json.Number) (domain.UpdatedPrice, error) {
	if !c.store.Ready() {
		return domain.UpdatedPrice{}, apperrors.NotReady()
	}
	if priceIndex == nil || price == nil {
		return domain.UpdatedPrice{}, apperrors.BadRequest("price_index and price are required.")
	}

	return c.store.UpdatePrice(itemCode, func(p *domain.Product) (domain.UpdatedPrice, error) {
		if len(p.Prices) == 0 {
			return domain.UpdatedPrice{}, apperrors.BadRequest("Product has no prices.")
		}

		idx, err := strconv.Atoi(priceIndex.String())
		if err != nil || idx < 1 {
			return domain.UpdatedPrice{}, apperrors.BadRequest("Invalid price_index.")
		}

		key := domain.PriceKey(idx)
		if _, ok := p.Prices[0][key]; !ok {
			return domain.UpdatedPrice{}, apperrors.BadRequest("Invalid price index key.")
		}

		value, err := price.Float64()
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return domain.UpdatedPrice{}, apperrors.BadRequest("Invalid price value.")
		}

		p.Prices[0][key] = value
		return domain.UpdatedPrice{
			ItemCode:   itemCode,
			PriceIndex: idx,
			NewPrice:   value,
		}, nil
	})
}

// Health describes the service state for the health endpoint.
type Health struct {
	Status    string    `json:"status"`
	DataReady bool      `json:"data_ready"`
	Products  int       `json:"products"`
	Dealers   int       `json:"dealers"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthInfo reports current readiness and dataset sizes. It is served even
// before the first load completes.
func (c *Catalog) HealthInfo() Health {
	products, dealers := c.store.Counts()
	return Health{
		Status:    "OK",
		DataReady: c.store.Ready(),
		Products:  products,
		Dealers:   dealers,
		Timestamp: time.Now().UTC(),
	}
}
