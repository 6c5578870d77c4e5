package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	"github.com/palmnatthakarn/Admin-Dashboard/internal/store"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/apperrors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testCatalog = `{
  "data": [
    {"item_code": "A1", "name": "Widget", "barcode": "111", "dealer_code": "EZ978", "prices": [{"price_1": 10}]},
    {"item_code": "A2", "name": "Gadget", "barcode": "222", "dealer_code": "QC759", "prices": [{"price_1": 20, "price_2": 18}]},
    {"item_code": "A3", "name": "Empty Prices", "dealer_code": "QC759", "prices": []}
  ],
  "pagination": {}
}`

func newTestCatalog(t *testing.T, maxPerPage int) *Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	st := store.New(domain.DefaultDealerNames(), testLogger())
	require.NoError(t, st.Load(path))
	return NewCatalog(st, maxPerPage, testLogger())
}

func num(s string) *json.Number {
	n := json.Number(s)
	return &n
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.Status)
	assert.Equal(t, message, apiErr.Message)
}

func TestProducts_NotReady(t *testing.T) {
	st := store.New(domain.DefaultDealerNames(), testLogger())
	c := NewCatalog(st, 200, testLogger())

	_, err := c.Products(ProductsRequest{})
	requireAPIError(t, err, 503, "Data is loading, please retry shortly.")

	_, err = c.Dealers()
	requireAPIError(t, err, 503, "Data is loading, please retry shortly.")

	_, err = c.SetPrice("A1", num("1"), num("5"))
	requireAPIError(t, err, 503, "Data is loading, please retry shortly.")
}

func TestProducts_SanitizesPaging(t *testing.T) {
	c := newTestCatalog(t, 200)

	result, err := c.Products(ProductsRequest{Page: "abc", PerPage: "-3"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 10, result.Pagination.PerPage)
	assert.Equal(t, 3, result.Pagination.Total)
}

func TestProducts_ClampsPerPage(t *testing.T) {
	c := newTestCatalog(t, 200)

	result, err := c.Products(ProductsRequest{PerPage: "9999"})
	require.NoError(t, err)

	assert.Equal(t, 200, result.Pagination.PerPage)
}

func TestProducts_TrimsFilters(t *testing.T) {
	c := newTestCatalog(t, 200)

	result, err := c.Products(ProductsRequest{DealerCode: "  EZ978  ", Search: " widget "})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Pagination.Total)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "A1", result.Data[0].ItemCode)
}

func TestProducts_EmptyFiltersReturnEverything(t *testing.T) {
	c := newTestCatalog(t, 200)

	result, err := c.Products(ProductsRequest{DealerCode: "", Search: ""})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pagination.Total)
}

func TestDealers_DirectoryContents(t *testing.T) {
	c := newTestCatalog(t, 200)

	result, err := c.Dealers()
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "EZ978", result.Data[0].DealerCode)
	assert.Equal(t, "Top Store", result.Data[0].DealerName)
	assert.Equal(t, "QC759", result.Data[1].DealerCode)
}

func TestSetPrice_MissingFields(t *testing.T) {
	c := newTestCatalog(t, 200)

	_, err := c.SetPrice("A1", nil, num("5"))
	requireAPIError(t, err, 400, "price_index and price are required.")

	_, err = c.SetPrice("A1", num("1"), nil)
	requireAPIError(t, err, 400, "price_index and price are required.")
}

func TestSetPrice_ProductNotFound(t *testing.T) {
	c := newTestCatalog(t, 200)

	_, err := c.SetPrice("NOPE", num("1"), num("5"))
	requireAPIError(t, err, 404, "Product not found.")
}

func TestSetPrice_NoPrices(t *testing.T) {
	c := newTestCatalog(t, 200)

	_, err := c.SetPrice("A3", num("1"), num("5"))
	requireAPIError(t, err, 400, "Product has no prices.")
}

func TestSetPrice_InvalidIndex(t *testing.T) {
	c := newTestCatalog(t, 200)

	_, err := c.SetPrice("A1", num("0"), num("5"))
	requireAPIError(t, err, 400, "Invalid price_index.")

	_, err = c.SetPrice("A1", num("1.5"), num("5"))
	requireAPIError(t, err, 400, "Invalid price_index.")
}

func TestSetPrice_IndexKeyNotPresent(t *testing.T) {
	c := newTestCatalog(t, 200)

	// A1 only has price_1; indices are overwritten, never created.
	_, err := c.SetPrice("A1", num("2"), num("5"))
	requireAPIError(t, err, 400, "Invalid price index key.")
}

func TestSetPrice_InvalidValue(t *testing.T) {
	c := newTestCatalog(t, 200)

	_, err := c.SetPrice("A1", num("1"), num("-1"))
	requireAPIError(t, err, 400, "Invalid price value.")
}

func TestSetPrice_Success_ReadYourWrites(t *testing.T) {
	c := newTestCatalog(t, 200)

	updated, err := c.SetPrice("A2", num("2"), num("17.5"))
	require.NoError(t, err)
	assert.Equal(t, domain.UpdatedPrice{ItemCode: "A2", PriceIndex: 2, NewPrice: 17.5}, updated)

	result, err := c.Products(ProductsRequest{Search: "gadget"})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, 17.5, result.Data[0].Prices[0]["price_2"])
}

func TestSetPrice_Idempotent(t *testing.T) {
	c := newTestCatalog(t, 200)

	first, err := c.SetPrice("A1", num("1"), num("12"))
	require.NoError(t, err)
	second, err := c.SetPrice("A1", num("1"), num("12"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHealthInfo(t *testing.T) {
	c := newTestCatalog(t, 200)

	h := c.HealthInfo()

	assert.Equal(t, "OK", h.Status)
	assert.True(t, h.DataReady)
	assert.Equal(t, 3, h.Products)
	assert.Equal(t, 2, h.Dealers)
	assert.False(t, h.Timestamp.IsZero())
}

func TestHealthInfo_BeforeLoad(t *testing.T) {
	st := store.New(domain.DefaultDealerNames(), testLogger())
	c := NewCatalog(st, 200, testLogger())

	h := c.HealthInfo()

	assert.Equal(t, "OK", h.Status)
	assert.False(t, h.DataReady)
	assert.Zero(t, h.Products)
}
