package dto_test

import (
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/model/dto"
	"dormy/shared/failure"
	"dormy/shared/validator"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validCreate() dto.CreateListingRequest {
	return dto.CreateListingRequest{
		Name:      "Casa Verde",
		Address:   model.Address{Barangay: "Barangay 3", City: "Iloilo City"},
		Price:     1500,
		Type:      model.TypeSingle,
		Images:    []string{"a.jpg", "b.jpg", "c.jpg"},
		Latitude:  ptr(10.72),
		Longitude: ptr(122.56),
	}
}

func TestCreateListingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateListingRequest)
		wantErr string
	}{
		{name: "valid", mutate: func(*dto.CreateListingRequest) {}},
		{name: "missing name", mutate: func(r *dto.CreateListingRequest) { r.Name = "" }, wantErr: "name"},
		{name: "two images", mutate: func(r *dto.CreateListingRequest) { r.Images = r.Images[:2] }, wantErr: "images"},
		{
			name:    "eight images",
			mutate:  func(r *dto.CreateListingRequest) { r.Images = []string{"1", "2", "3", "4", "5", "6", "7", "8"} },
			wantErr: "images",
		},
		{name: "blank image", mutate: func(r *dto.CreateListingRequest) { r.Images[1] = " " }, wantErr: "images"},
		{name: "marker not placed", mutate: func(r *dto.CreateListingRequest) { r.Latitude = nil }, wantErr: dto.ErrMarkerNotPlaced.Error()},
		{name: "no address", mutate: func(r *dto.CreateListingRequest) { r.Address = model.Address{} }, wantErr: dto.ErrAddressRequired.Error()},
		{name: "unknown type", mutate: func(r *dto.CreateListingRequest) { r.Type = "villa" }, wantErr: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateListingRequest_ToModel(t *testing.T) {
	req := validCreate()

	m := req.ToModel("landlord-1")

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "landlord-1", m.LandlordID)
	assert.Equal(t, model.StatusAvailable, m.Status)
	assert.NotNil(t, m.Amenities)
	assert.Equal(t, "landlord-1", m.CreatedBy)
	assert.Len(t, m.Images, 3)
}

func TestUpdateListingRequest_Validation(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.UpdateListingRequest{Name: "New name"}))
	assert.Error(t, validator.ValidateStruct(&dto.UpdateListingRequest{Latitude: ptr(1.0)}))
	assert.Error(t, validator.ValidateStruct(&dto.UpdateListingRequest{Address: &model.Address{}}))
	assert.Error(t, validator.ValidateStruct(&dto.UpdateListingRequest{Images: []string{"1", "2", "3", "4", "5", "6", "7", "8"}}))
}

func TestSearchRequest_FromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/listings/search?q=brgy+3&type=single&location=jaro&price_range=500-2000", nil)

	var req dto.SearchRequest
	req.FromRequest(r)

	assert.Equal(t, "brgy 3", req.Query)
	assert.NoError(t, validator.ValidateStruct(&req))
	assert.Equal(t, "jaro", req.Filters().Location)

	req.PriceRange = "cheap"
	assert.Error(t, validator.ValidateStruct(&req))
}

func TestListingResponse_FromModel(t *testing.T) {
	var res dto.ListingResponse
	res.FromModel(model.Listing{ID: "l1", Price: 1500, Address: model.Address{City: "Cebu"}, Images: []string{"a"}})

	assert.Equal(t, "₱1500", res.PriceText)
	assert.Equal(t, "Cebu", res.AddressText)
	assert.Equal(t, []string{"a"}, res.Images)
}
