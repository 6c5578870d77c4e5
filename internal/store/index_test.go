package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
)

func testNames() domain.DealerNames {
	return domain.DealerNames{
		"EZ978": "Top Store",
		"QC759": "Golden Market",
	}
}

func testProduct(itemCode, name, barcode, dealerCode string, price float64) domain.Product {
	return domain.Product{
		ItemCode:   itemCode,
		Name:       name,
		Barcode:    barcode,
		DealerCode: dealerCode,
		Prices:     []domain.PriceEntry{{"price_1": price}},
	}
}

func TestBuildSnapshot_SearchText(t *testing.T) {
	snap := buildSnapshot([]domain.Product{
		testProduct("A1", "WidGet ProMAX", "885000CODE", "EZ978", 10),
	}, testNames())

	require.Len(t, snap.searchText, 1)
	assert.Equal(t, "widget promax a1 885000code", snap.searchText[0])
}

func TestBuildSnapshot_SearchText_MissingFields(t *testing.T) {
	snap := buildSnapshot([]domain.Product{
		{ItemCode: "A1"},
	}, testNames())

	require.Len(t, snap.searchText, 1)
	assert.Equal(t, " a1 ", snap.searchText[0])
}

func TestBuildSnapshot_DealerIndexCoversAllProducts(t *testing.T) {
	products := []domain.Product{
		testProduct("A1", "Widget", "", "EZ978", 10),
		testProduct("A2", "Widget Pro", "", "QC759", 12),
		testProduct("A3", "Widget Max", "", "EZ978", 14),
		testProduct("A4", "Orphan", "", "", 1),
	}
	snap := buildSnapshot(products, testNames())

	seen := map[int]bool{}
	for _, positions := range snap.dealerIndex {
		for _, i := range positions {
			seen[i] = true
		}
	}
	assert.Len(t, seen, len(products))

	assert.Equal(t, []int{0, 2}, snap.dealerIndex["EZ978"])
	assert.Equal(t, []int{1}, snap.dealerIndex["QC759"])
	assert.Equal(t, []int{3}, snap.dealerIndex[""])
}

func TestBuildSnapshot_DirectorySortedAndFiltered(t *testing.T) {
	snap := buildSnapshot([]domain.Product{
		testProduct("A1", "Widget", "", "QC759", 10),
		testProduct("A2", "Widget", "", "EZ978", 10),
		testProduct("A3", "Orphan", "", "", 1),
	}, testNames())

	// Sorted ascending by code; the empty-code bucket never appears.
	require.Len(t, snap.dealers, 2)
	assert.Equal(t, "EZ978", snap.dealers[0].DealerCode)
	assert.Equal(t, "Top Store", snap.dealers[0].DealerName)
	assert.Equal(t, "QC759", snap.dealers[1].DealerCode)
	assert.Equal(t, "Golden Market", snap.dealers[1].DealerName)
}

func TestBuildSnapshot_UnknownDealerNameFallback(t *testing.T) {
	snap := buildSnapshot([]domain.Product{
		testProduct("A1", "Widget", "", "XX999", 10),
	}, testNames())

	require.Len(t, snap.dealers, 1)
	assert.Equal(t, "Dealer XX999", snap.dealers[0].DealerName)
}

func TestBuildSnapshot_NilProducts(t *testing.T) {
	snap := buildSnapshot(nil, testNames())

	assert.Empty(t, snap.products)
	assert.Empty(t, snap.dealers)
	assert.Empty(t, snap.dealerIndex)
}
