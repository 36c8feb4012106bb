package dto

import (
	"dormy/internal/domains/user/model"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	"dormy/shared/timezone"
)

// UpdateProfileRequest patches the caller's own record. Role, email and the
// verified flag are not writable here.
type UpdateProfileRequest struct {
	FullName       *string `db:"full_name"       json:"full_name"       validate:"omitempty,min=2,max=120"`
	Phone          *string `db:"phone"           json:"phone"           validate:"omitempty,phmobile"`
	Gender         *string `db:"gender"          json:"gender"          validate:"omitempty,max=20"`
	Birthdate      *string `db:"birthdate"       json:"birthdate"       validate:"omitempty,datetime=2006-01-02"`
	Address        *string `db:"address"         json:"address"         validate:"omitempty,max=300"`
	ProfilePicture *string `db:"profile_picture" json:"profile_picture" validate:"omitempty,url"`
	GcashName      *string `db:"gcash_name"      json:"gcash_name"      validate:"omitempty,max=120"`
	GcashNumber    *string `db:"gcash_number"    json:"gcash_number"    validate:"omitempty,phmobile"`
	QRCodeURL      *string `db:"qr_code_url"     json:"qr_code_url"     validate:"omitempty,url"`
}

func (u *UpdateProfileRequest) TouchesPaymentInfo() bool {
	return u.GcashName != nil || u.GcashNumber != nil || u.QRCodeURL != nil
}

type ProfileResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender"`
	Birthdate      string `json:"birthdate,omitempty"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profile_picture"`
	Verified       bool   `json:"verified"`
	LastLogin      string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (p *ProfileResponse) FromModel(u model.User) {
	p.ID = u.ID
	p.Email = u.Email
	p.Role = u.Role
	p.FullName = u.FullName
	p.Phone = u.Phone
	p.Gender = u.Gender
	p.Address = u.Address
	p.ProfilePicture = u.ProfilePicture
	p.Verified = u.Verified

	if u.Birthdate != nil {
		p.Birthdate = u.Birthdate.Format(constant.DateOnlyFormat)
	}

	if u.LastLogin != nil {
		p.LastLogin = timezone.Format(*u.LastLogin, constant.DateFormat)
	}

	p.Metadata.FromModel(u.Metadata)
}

type PaymentInfoResponse struct {
	LandlordID  string `json:"landlord_id"`
	GcashName   string `json:"gcash_name"`
	GcashNumber string `json:"gcash_number"`
	QRCodeURL   string `json:"qr_code_url"`
	Complete    bool   `json:"complete"`
}

func (p *PaymentInfoResponse) FromModel(u model.User) {
	p.LandlordID = u.ID
	p.GcashName = u.GcashName
	p.GcashNumber = u.GcashNumber
	p.QRCodeURL = u.QRCodeURL
	p.Complete = u.PaymentInfoComplete()
}
