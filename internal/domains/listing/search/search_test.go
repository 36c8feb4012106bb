package search_test

import (
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/search"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(listings []model.Listing) []string {
	res := make([]string, 0, len(listings))
	for _, l := range listings {
		res = append(res, l.ID)
	}

	return res
}

func fixture() []model.Listing {
	return []model.Listing{
		{
			ID: "l1", Name: "Casa Verde", Price: 1500, Type: model.TypeSingle, Status: model.StatusAvailable,
			Address: model.Address{Street: "Mabini St.", Barangay: "Barangay 3", City: "Iloilo City"},
		},
		{
			ID: "l2", Name: "Sunset Rooms", Price: 3500, Type: model.TypeShared, Status: model.StatusOccupied,
			Address: model.Address{Line: "Brgy. 3, Iloilo City"},
		},
		{
			ID: "l3", Name: "Bayview Dorm", Price: 6000, Type: model.TypeBedspace, Status: model.StatusAvailable,
			Address: model.Address{Line: "Brgy 3, Jaro"}, Description: "near the university",
		},
		{
			ID: "l4", Name: "Sunset Annex", Price: 2200, Type: model.TypeStudio, Status: model.StatusReserved,
			Address: model.Address{City: "Bacolod"},
		},
		{
			ID: "l5", Name: "Lopez Residences", Price: 2500, Type: model.TypeDouble, Status: model.StatusAvailable,
			Address: model.Address{Barangay: "Barangay 12", City: "Bacolod"},
		},
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"brgy 3":         "barangay 3",
		"Brgy. 3":        "barangay 3",
		"BRGYS 1 and 2":  "barangay 1 and 2",
		"Barangay 3":     "barangay 3",
		"brgyhall":       "brgyhall",
		"near brgy hall": "near barangay hall",
	}

	for in, want := range tests {
		assert.Equal(t, want, search.Normalize(in), in)
	}
}

func TestFilter_BarangayAbbreviationMatchesFullWord(t *testing.T) {
	listings := fixture()

	short := search.Filter(listings, "brgy 3", search.Filters{})
	long := search.Filter(listings, "barangay 3", search.Filters{})

	assert.Equal(t, ids(long), ids(short))
	assert.Equal(t, []string{"l1", "l3"}, ids(short))
}

func TestFilter_ExcludesReservedAndOccupied(t *testing.T) {
	res := search.Filter(fixture(), "Sunset", search.Filters{})

	assert.Empty(t, res)

	all := search.Filter(fixture(), "", search.Filters{})
	assert.Equal(t, []string{"l1", "l3", "l5"}, ids(all))
}

func TestFilter_PriceBracket(t *testing.T) {
	listing := []model.Listing{{ID: "p", Price: 1500, Status: model.StatusAvailable}}

	assert.Len(t, search.Filter(listing, "", search.Filters{PriceRange: search.PriceRangeLow}), 1)
	assert.Empty(t, search.Filter(listing, "", search.Filters{PriceRange: search.PriceRangeMid}))
	assert.Empty(t, search.Filter(listing, "", search.Filters{PriceRange: search.PriceRangeHigh}))
}

func TestFilter_StructuredFilters(t *testing.T) {
	listings := fixture()

	assert.Equal(t, []string{"l5"}, ids(search.Filter(listings, "", search.Filters{Type: "DOUBLE"})))
	assert.Equal(t, []string{"l5"}, ids(search.Filter(listings, "", search.Filters{Location: "bacolod"})))
	assert.Equal(t, []string{"l3"}, ids(search.Filter(listings, "university", search.Filters{Location: "brgy. 3"})))
	assert.Equal(t, []string{"l3"}, ids(search.Filter(listings, "", search.Filters{PriceRange: search.PriceRangeHigh})))
	assert.Empty(t, search.Filter(listings, "casa", search.Filters{Type: model.TypeDouble}))
}

func TestFilter_MatchesPriceText(t *testing.T) {
	assert.Equal(t, []string{"l1"}, ids(search.Filter(fixture(), "₱1500", search.Filters{})))
}

func TestBracket(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"₱1500", search.PriceRangeLow},
		{"500", search.PriceRangeLow},
		{"2000", search.PriceRangeLow},
		{"2001", search.PriceRangeMid},
		{"₱5000.50", search.PriceRangeMid},
		{"5001", search.PriceRangeHigh},
		{"₱10000000000000000000", search.PriceRangeHigh},
		{"000000000000000000000001500", search.PriceRangeLow},
		{"499", ""},
		{"free", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, search.Bracket(tt.text), tt.text)
	}
}

func TestFilter_HugePriceIsHighBracket(t *testing.T) {
	listings := []model.Listing{{ID: "big", Name: "Mansion", Price: 1e19, Status: model.StatusAvailable}}

	got := search.Filter(listings, "", search.Filters{PriceRange: search.PriceRangeHigh})

	assert.Equal(t, []string{"big"}, ids(got))
}
