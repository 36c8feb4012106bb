package model

import (
	"dormy/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldListingID  = "listing_id"
	FieldLandlordID = "landlord_id"
	FieldTenantID   = "tenant_id"
	FieldCreatedAt  = "created_at"

	CachePrefix = "reservation:"
)

// Reservation is a pending request. Resolving it deletes the row, so
// there is no status column.
type Reservation struct {
	ID               string     `db:"id"`
	ListingID        string     `db:"listing_id"`
	LandlordID       string     `db:"landlord_id"`
	TenantID         string     `db:"tenant_id"`
	TenantName       string     `db:"tenant_name"`
	TenantGender     string     `db:"tenant_gender"`
	TenantBirthdate  *time.Time `db:"tenant_birthdate"`
	TenantAge        int        `db:"tenant_age"`
	TenantPhone      string     `db:"tenant_phone"`
	TenantEmail      string     `db:"tenant_email"`
	TenantAddress    string     `db:"tenant_address"`
	RoomType         string     `db:"room_type"`
	Price            float64    `db:"price"`
	PaymentReference string     `db:"payment_reference"`
	ListingName      *string    `db:"listing_name" table:"boarding_houses" column:"name"`
	model.Metadata
}

// GetJoinQuery keeps reservations whose listing has been deleted.
func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN boarding_houses ON boarding_houses.id = reservations.listing_id"
}

func (r Reservation) Involves(userID string) bool {
	return userID != "" && (r.TenantID == userID || r.LandlordID == userID)
}
