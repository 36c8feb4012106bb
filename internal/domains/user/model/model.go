package model

import (
	"dormy/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldVerified  = "verified"
	FieldLastLogin = "last_login"
	FieldActive    = "active"

	CachePrefix = "user:"
)

type User struct {
	ID             string     `db:"id"`
	Email          string     `db:"email"`
	Password       string     `db:"password"`
	Role           string     `db:"role"`
	FullName       string     `db:"full_name"`
	Phone          string     `db:"phone"`
	Gender         string     `db:"gender"`
	Birthdate      *time.Time `db:"birthdate"`
	Address        string     `db:"address"`
	ProfilePicture string     `db:"profile_picture"`
	Verified       bool       `db:"verified"`
	GcashName      string     `db:"gcash_name"`
	GcashNumber    string     `db:"gcash_number"`
	QRCodeURL      string     `db:"qr_code_url"`
	LastLogin      *time.Time `db:"last_login"`
	Active         bool       `db:"active"`
	model.Metadata
}

// PaymentInfoComplete reports whether tenants have everything they need to
// pay this landlord.
func (u User) PaymentInfoComplete() bool {
	return u.GcashName != "" && u.GcashNumber != "" && u.QRCodeURL != ""
}
