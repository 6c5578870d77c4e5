package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductClone_Isolation(t *testing.T) {
	orig := Product{
		ItemCode: "A1",
		Name:     "Widget",
		Prices:   []PriceEntry{{"price_1": 10, "price_2": 9}},
	}

	clone := orig.Clone()
	clone.Prices[0]["price_1"] = 999

	assert.Equal(t, float64(10), orig.Prices[0]["price_1"])
	assert.Equal(t, float64(999), clone.Prices[0]["price_1"])
}

func TestProductClone_NilPrices(t *testing.T) {
	orig := Product{ItemCode: "A1"}

	clone := orig.Clone()

	assert.Nil(t, clone.Prices)
}

func TestPriceKey(t *testing.T) {
	assert.Equal(t, "price_1", PriceKey(1))
	assert.Equal(t, "price_12", PriceKey(12))
}

func TestDealerNames_Resolve(t *testing.T) {
	names := DefaultDealerNames()

	assert.Equal(t, "Top Store", names.Resolve("EZ978"))
	assert.Equal(t, "Golden Market", names.Resolve("QC759"))
	assert.Equal(t, "Dealer XX000", names.Resolve("XX000"))
}
