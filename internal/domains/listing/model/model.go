package model

import (
	"database/sql/driver"
	"dormy/shared/model"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lib/pq"
)

const (
	TableName  = "boarding_houses"
	EntityName = "listing"

	FieldID         = "id"
	FieldLandlordID = "landlord_id"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldType       = "type"
	FieldStatus     = "status"
	FieldCreatedAt  = "created_at"

	// CachePrefix namespaces every cached listing read; clearing it drops them all.
	CachePrefix = "listing:"
)

const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusOccupied  = "occupied"
)

const (
	TypeSingle    = "single"
	TypeDouble    = "double"
	TypeShared    = "shared"
	TypeBedspace  = "bedspace"
	TypeStudio    = "studio"
	TypeApartment = "apartment"
)

var (
	Statuses  = []string{StatusAvailable, StatusReserved, StatusOccupied}
	RoomTypes = []string{TypeSingle, TypeDouble, TypeShared, TypeBedspace, TypeStudio, TypeApartment}
)

func ValidStatus(status string) bool {
	return slices.Contains(Statuses, status)
}

// Address is stored as a JSON document. Free-text addresses live in Line.
type Address struct {
	Line     string `json:"line,omitempty"`
	Street   string `json:"street,omitempty"`
	Barangay string `json:"barangay,omitempty"`
	City     string `json:"city,omitempty"`
	Province string `json:"province,omitempty"`
}

func (a Address) String() string {
	parts := make([]string, 0, 5)

	for _, p := range []string{a.Line, a.Street, a.Barangay, a.City, a.Province} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(src any) error {
	return scanJSON(src, a)
}

// Amenities maps an amenity key (wifi, aircon, ...) to availability.
type Amenities map[string]bool

func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(map[string]bool(a))
}

func (a *Amenities) Scan(src any) error {
	return scanJSON(src, a)
}

func scanJSON(src, dest any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Join(errors.New("decoding json column"), err)
	}

	return nil
}

type Listing struct {
	ID          string         `db:"id"`
	LandlordID  string         `db:"landlord_id"`
	Name        string         `db:"name"`
	Address     Address        `db:"address"`
	Price       float64        `db:"price"`
	Type        string         `db:"type"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	Latitude    *float64       `db:"latitude"`
	Longitude   *float64       `db:"longitude"`
	Amenities   Amenities      `db:"amenities"`
	Status      string         `db:"status"`
	model.Metadata
}

func (l Listing) OwnedBy(userID string) bool {
	return userID != "" && l.LandlordID == userID
}
