package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
	"github.com/palmnatthakarn/Admin-Dashboard/pkg/apperrors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCatalog = `{
  "data": [
    {"item_code": "A1", "name": "Widget", "barcode": "111", "dealer_code": "EZ978", "prices": [{"price_1": 10}]},
    {"item_code": "A2", "name": "Gadget", "barcode": "222", "dealer_code": "QC759", "prices": [{"price_1": 20}]}
  ],
  "pagination": {"resource": "products", "page": 1, "per_page": 10, "total": 2, "total_pages": 1}
}`

func TestStore_NotReadyBeforeLoad(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	assert.False(t, s.Ready())
}

func TestStore_Load_Success(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	path := writeCatalogFile(t, validCatalog)

	require.NoError(t, s.Load(path))

	assert.True(t, s.Ready())
	products, dealers := s.Counts()
	assert.Equal(t, 2, products)
	assert.Equal(t, 2, dealers)
}

func TestStore_Load_MissingFile_FallsBackEmptyReady(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())

	err := s.Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
	assert.True(t, s.Ready())
	products, dealers := s.Counts()
	assert.Zero(t, products)
	assert.Zero(t, dealers)
}

func TestStore_Load_MalformedJSON_FallsBackEmptyReady(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	path := writeCatalogFile(t, `{"data": [`)

	err := s.Load(path)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.True(t, s.Ready())
	products, _ := s.Counts()
	assert.Zero(t, products)
}

func TestStore_Load_MissingDataArray_SchemaError(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	path := writeCatalogFile(t, `{"pagination": {}}`)

	err := s.Load(path)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
	assert.True(t, s.Ready())
}

func TestStore_Reload_ReplacesSnapshot(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	require.NoError(t, s.Load(writeCatalogFile(t, validCatalog)))

	// Reload from a smaller document; both the product list and the
	// dealer directory must reflect the new snapshot.
	smaller := `{"data": [{"item_code": "B9", "name": "Solo", "dealer_code": "WW013", "prices": [{"price_1": 5}]}], "pagination": {}}`
	require.NoError(t, s.Load(writeCatalogFile(t, smaller)))

	products, dealers := s.Counts()
	assert.Equal(t, 1, products)
	assert.Equal(t, 1, dealers)

	data, _ := s.Products(domain.ProductQuery{Page: 1, PerPage: 10})
	require.Len(t, data, 1)
	assert.Equal(t, "B9", data[0].ItemCode)
}

func TestStore_UpdatePrice_NotFound(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	require.NoError(t, s.Load(writeCatalogFile(t, validCatalog)))

	_, err := s.UpdatePrice("NOPE", func(p *domain.Product) (domain.UpdatedPrice, error) {
		t.Fatal("apply must not run for a missing product")
		return domain.UpdatedPrice{}, nil
	})

	var apiErr *apperrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Product not found.", apiErr.Message)
}

func TestStore_UpdatePrice_MutatesLiveRecord(t *testing.T) {
	s := New(domain.DefaultDealerNames(), testLogger())
	require.NoError(t, s.Load(writeCatalogFile(t, validCatalog)))

	updated, err := s.UpdatePrice("A1", func(p *domain.Product) (domain.UpdatedPrice, error) {
		p.Prices[0]["price_1"] = 12
		return domain.UpdatedPrice{ItemCode: "A1", PriceIndex: 1, NewPrice: 12}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 12.0, updated.NewPrice)

	data, _ := s.Products(domain.ProductQuery{DealerCode: "EZ978", Page: 1, PerPage: 10})
	require.Len(t, data, 1)
	assert.Equal(t, 12.0, data[0].Prices[0]["price_1"])
}
