package dto

import (
	listingModel "dormy/internal/domains/listing/model"
	"dormy/internal/domains/reservation/model"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	gModel "dormy/shared/model"
	"dormy/shared/timezone"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrBirthdateFormat = errors.New("birthdate must be formatted as YYYY-MM-DD")

type TenantSnapshot struct {
	Name      string `json:"name"      validate:"required,max=120"`
	Gender    string `json:"gender"    validate:"omitempty,max=20"`
	Birthdate string `json:"birthdate" validate:"omitempty"`
	Age       int    `json:"age"       validate:"omitempty,min=0,max=120"`
	Phone     string `json:"phone"     validate:"required,phmobile"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Address   string `json:"address"   validate:"omitempty,max=300"`
}

func (t *TenantSnapshot) birthdate() (*time.Time, error) {
	if t.Birthdate == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.Parse(constant.DateOnlyFormat, t.Birthdate)
	if err != nil {
		return nil, ErrBirthdateFormat
	}

	return &parsed, nil
}

// CreateReservationRequest carries the landlord id only so a client that
// disagrees with the listing's owner gets an error instead of a silent fix.
type CreateReservationRequest struct {
	ListingID        string         `json:"listing_id"        validate:"required"`
	LandlordID       string         `json:"landlord_id"`
	PaymentReference string         `json:"payment_reference" validate:"required,max=100"`
	Tenant           TenantSnapshot `json:"tenant"            validate:"required"`
}

func (c *CreateReservationRequest) Validate() error {
	if strings.TrimSpace(c.PaymentReference) == "" {
		return errors.New("payment_reference is required")
	}

	_, err := c.Tenant.birthdate()

	return err
}

func (c *CreateReservationRequest) ToModel(tenantID string, listing listingModel.Listing) model.Reservation {
	birthdate, _ := c.Tenant.birthdate()

	return model.Reservation{
		ID:               uuid.NewString(),
		ListingID:        listing.ID,
		LandlordID:       listing.LandlordID,
		TenantID:         tenantID,
		TenantName:       strings.TrimSpace(c.Tenant.Name),
		TenantGender:     c.Tenant.Gender,
		TenantBirthdate:  birthdate,
		TenantAge:        c.Tenant.Age,
		TenantPhone:      c.Tenant.Phone,
		TenantEmail:      c.Tenant.Email,
		TenantAddress:    c.Tenant.Address,
		RoomType:         listing.Type,
		Price:            listing.Price,
		PaymentReference: strings.TrimSpace(c.PaymentReference),
		Metadata:         gModel.NewMetadata(tenantID, timezone.Now()),
	}
}

type ReservationResponse struct {
	ID               string         `json:"id"`
	ListingID        string         `json:"listing_id"`
	ListingName      string         `json:"listing_name"`
	ListingDeleted   bool           `json:"listing_deleted"`
	LandlordID       string         `json:"landlord_id"`
	TenantID         string         `json:"tenant_id"`
	Tenant           TenantSnapshot `json:"tenant"`
	RoomType         string         `json:"room_type"`
	Price            float64        `json:"price"`
	PaymentReference string         `json:"payment_reference"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.ListingID = m.ListingID
	r.ListingDeleted = m.ListingName == nil
	r.ListingName = ""
	if m.ListingName != nil {
		r.ListingName = *m.ListingName
	}
	r.LandlordID = m.LandlordID
	r.TenantID = m.TenantID
	r.Tenant = TenantSnapshot{
		Name:    m.TenantName,
		Gender:  m.TenantGender,
		Age:     m.TenantAge,
		Phone:   m.TenantPhone,
		Email:   m.TenantEmail,
		Address: m.TenantAddress,
	}
	if m.TenantBirthdate != nil {
		r.Tenant.Birthdate = timezone.Format(*m.TenantBirthdate, constant.DateOnlyFormat)
	}
	r.RoomType = m.RoomType
	r.Price = m.Price
	r.PaymentReference = m.PaymentReference
	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Pagination   gDto.Pagination       `json:"pagination"`
}

func (g *GetReservationsResponse) FromModels(models []model.Reservation, params gDto.QueryParams, total int) {
	g.Pagination = gDto.NewPagination(params, total)
	g.Reservations = make([]ReservationResponse, len(models))

	for i, m := range models {
		g.Reservations[i].FromModel(m)
	}
}

// ResolveResponse names the resolved reservation so clients can drop it
// from whatever list they hold.
type ResolveResponse struct {
	ReservationID string `json:"reservation_id"`
	ListingID     string `json:"listing_id"`
	ListingStatus string `json:"listing_status"`
}
