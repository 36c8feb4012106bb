package dto

import (
	"dormy/internal/domains/listing/model"
	"dormy/internal/domains/listing/search"
	gDto "dormy/shared/dto"
	gModel "dormy/shared/model"
	"dormy/shared/timezone"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrAddressRequired = errors.New("address is required")
	ErrMarkerNotPlaced = errors.New("location marker must be placed on the map")
)

type CreateListingRequest struct {
	Name        string          `json:"name"        validate:"required,max=120"`
	Address     model.Address   `json:"address"`
	Price       float64         `json:"price"       validate:"required,gt=0"`
	Type        string          `json:"type"        validate:"required,oneof=single double shared bedspace studio apartment"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Images      []string        `json:"images"      validate:"listingimages"`
	Latitude    *float64        `json:"latitude"    validate:"omitempty,min=-90,max=90"`
	Longitude   *float64        `json:"longitude"   validate:"omitempty,min=-180,max=180"`
	Amenities   model.Amenities `json:"amenities"`
}

func (c *CreateListingRequest) Validate() error {
	if c.Address.String() == "" {
		return ErrAddressRequired
	}

	if c.Latitude == nil || c.Longitude == nil {
		return ErrMarkerNotPlaced
	}

	return nil
}

func (c *CreateListingRequest) ToModel(user string) model.Listing {
	amenities := c.Amenities
	if amenities == nil {
		amenities = model.Amenities{}
	}

	return model.Listing{
		ID:          uuid.NewString(),
		LandlordID:  user,
		Name:        strings.TrimSpace(c.Name),
		Address:     c.Address,
		Price:       c.Price,
		Type:        c.Type,
		Description: c.Description,
		Images:      pq.StringArray(c.Images),
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Amenities:   amenities,
		Status:      model.StatusAvailable,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateListingRequest has no status field; status only moves through the
// reservation workflow and MakeAvailable.
type UpdateListingRequest struct {
	Name        string          `db:"name"        json:"name"        validate:"omitempty,max=120"`
	Address     *model.Address  `db:"address"     json:"address"`
	Price       *float64        `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Type        string          `db:"type"        json:"type"        validate:"omitempty,oneof=single double shared bedspace studio apartment"`
	Description *string         `db:"description" json:"description" validate:"omitempty,max=2000"`
	Images      pq.StringArray  `db:"images"      json:"images"      validate:"omitempty,min=1,max=7,dive,required"`
	Latitude    *float64        `db:"latitude"    json:"latitude"    validate:"omitempty,min=-90,max=90"`
	Longitude   *float64        `db:"longitude"   json:"longitude"   validate:"omitempty,min=-180,max=180"`
	Amenities   model.Amenities `db:"amenities"   json:"amenities"`
}

func (u *UpdateListingRequest) Validate() error {
	if u.Address != nil && u.Address.String() == "" {
		return ErrAddressRequired
	}

	if (u.Latitude == nil) != (u.Longitude == nil) {
		return ErrMarkerNotPlaced
	}

	return nil
}

type SearchRequest struct {
	Query      string `json:"q"           validate:"omitempty,max=200"`
	Type       string `json:"type"        validate:"omitempty,max=50"`
	Location   string `json:"location"    validate:"omitempty,max=200"`
	PriceRange string `json:"price_range" validate:"omitempty,oneof=500-2000 2001-5000 5001-up"`
}

func (s *SearchRequest) FromRequest(r *http.Request) {
	q := r.URL.Query()

	s.Query = q.Get("q")
	s.Type = q.Get("type")
	s.Location = q.Get("location")
	s.PriceRange = q.Get("price_range")
}

func (s *SearchRequest) Filters() search.Filters {
	return search.Filters{Type: s.Type, Location: s.Location, PriceRange: s.PriceRange}
}

type ListingResponse struct {
	ID          string          `json:"id"`
	LandlordID  string          `json:"landlord_id"`
	Name        string          `json:"name"`
	Address     model.Address   `json:"address"`
	AddressText string          `json:"address_text"`
	Price       float64         `json:"price"`
	PriceText   string          `json:"price_text"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Amenities   model.Amenities `json:"amenities"`
	Status      string          `json:"status"`
	gDto.Metadata
}

func (l *ListingResponse) FromModel(m model.Listing) {
	l.ID = m.ID
	l.LandlordID = m.LandlordID
	l.Name = m.Name
	l.Address = m.Address
	l.AddressText = m.Address.String()
	l.Price = m.Price
	l.PriceText = search.PriceText(m.Price)
	l.Type = m.Type
	l.Description = m.Description
	l.Images = append([]string{}, m.Images...)
	l.Latitude = m.Latitude
	l.Longitude = m.Longitude
	l.Amenities = m.Amenities
	l.Status = m.Status
	l.Metadata.FromModel(m.Metadata)
}

type GetListingsResponse struct {
	Listings   []ListingResponse `json:"listings"`
	Pagination gDto.Pagination   `json:"pagination"`
}

func (g *GetListingsResponse) FromModels(models []model.Listing, params gDto.QueryParams, total int) {
	g.Pagination = gDto.NewPagination(params, total)
	g.Listings = FromModels(models)
}

func FromModels(models []model.Listing) []ListingResponse {
	res := make([]ListingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type StatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
