package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceUpdate struct {
	PriceIndex *json.Number `json:"price_index" validate:"required"`
	Price      *json.Number `json:"price" validate:"required"`
}

func TestValidate_Valid(t *testing.T) {
	idx := json.Number("1")
	val := json.Number("9.5")

	err := Validate(priceUpdate{PriceIndex: &idx, Price: &val})

	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(priceUpdate{})

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := verr.Fields()
	assert.Equal(t, "is required", fields["PriceIndex"])
	assert.Equal(t, "is required", fields["Price"])
}

func TestValidationError_Message(t *testing.T) {
	idx := json.Number("1")

	err := Validate(priceUpdate{PriceIndex: &idx})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Price' is required")
}
