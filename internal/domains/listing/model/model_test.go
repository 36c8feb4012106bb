package model_test

import (
	"dormy/internal/domains/listing/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressString(t *testing.T) {
	a := model.Address{Street: "Rizal St.", Barangay: "Barangay 3", City: " Iloilo City ", Province: "Iloilo"}

	assert.Equal(t, "Rizal St., Barangay 3, Iloilo City, Iloilo", a.String())
	assert.Equal(t, "", model.Address{}.String())
}

func TestAddressColumnRoundTrip(t *testing.T) {
	in := model.Address{Line: "Blk 4 Lot 2", City: "Cebu"}

	raw, err := in.Value()
	require.NoError(t, err)

	var out model.Address
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, in, out)

	var fromString model.Address
	require.NoError(t, fromString.Scan(string(raw.([]byte))))
	assert.Equal(t, in, fromString)

	assert.Error(t, out.Scan(42))
	assert.NoError(t, out.Scan(nil))
}

func TestAmenitiesColumn(t *testing.T) {
	var nilAmenities model.Amenities

	raw, err := nilAmenities.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), raw)

	var out model.Amenities
	require.NoError(t, out.Scan([]byte(`{"wifi":true,"aircon":false}`)))
	assert.True(t, out["wifi"])
	assert.False(t, out["aircon"])
}

func TestValidStatusAndOwnership(t *testing.T) {
	assert.True(t, model.ValidStatus(model.StatusOccupied))
	assert.False(t, model.ValidStatus("pending"))

	l := model.Listing{LandlordID: "u1"}
	assert.True(t, l.OwnedBy("u1"))
	assert.False(t, l.OwnedBy(""))
	assert.False(t, l.OwnedBy("u2"))
}
