package dto

import (
	"dormy/internal/domains/verification/model"
	"dormy/shared/constant"
	gDto "dormy/shared/dto"
	gModel "dormy/shared/model"
	"dormy/shared/timezone"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	FullName         string `json:"full_name"         validate:"required,min=2,max=120"`
	Phone            string `json:"phone"             validate:"required,phmobile"`
	Address          string `json:"address"           validate:"required,max=300"`
	IDDocumentURL    string `json:"id_document_url"   validate:"required,url"`
	PaymentReference string `json:"payment_reference" validate:"required,max=100"`
}

func (s *SubmitRequest) Validate() error {
	if strings.TrimSpace(s.PaymentReference) == "" {
		return errors.New("payment_reference is required")
	}

	return nil
}

func (s *SubmitRequest) ToModel(landlordID string) model.Verification {
	return model.Verification{
		ID:               uuid.NewString(),
		LandlordID:       landlordID,
		FullName:         strings.TrimSpace(s.FullName),
		Phone:            s.Phone,
		Address:          strings.TrimSpace(s.Address),
		IDDocumentURL:    s.IDDocumentURL,
		PaymentReference: strings.TrimSpace(s.PaymentReference),
		Status:           model.StatusPending,
		Metadata:         gModel.NewMetadata(landlordID, timezone.Now()),
	}
}

// ListRequest filters the admin queue by status; empty means all.
type ListRequest struct {
	Status string `validate:"omitempty,oneof=pending approved rejected"`
}

func (l *ListRequest) FromRequest(r *http.Request) {
	l.Status = strings.TrimSpace(r.URL.Query().Get("status"))
}

func (l *ListRequest) Filter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if l.Status != constant.Empty {
		filter.Add(gDto.Filter{
			Field:    model.FieldStatus,
			Value:    l.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter
}

type VerificationResponse struct {
	ID               string `json:"id"`
	LandlordID       string `json:"landlord_id"`
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	IDDocumentURL    string `json:"id_document_url"`
	PaymentReference string `json:"payment_reference"`
	Status           string `json:"status"`
	ReviewedBy       string `json:"reviewed_by,omitempty"`
	ReviewedAt       string `json:"reviewed_at,omitempty"`
	gDto.Metadata
}

func (v *VerificationResponse) FromModel(m model.Verification) {
	v.ID = m.ID
	v.LandlordID = m.LandlordID
	v.FullName = m.FullName
	v.Phone = m.Phone
	v.Address = m.Address
	v.IDDocumentURL = m.IDDocumentURL
	v.PaymentReference = m.PaymentReference
	v.Status = m.Status

	if m.ReviewedBy != nil {
		v.ReviewedBy = *m.ReviewedBy
	}

	if m.ReviewedAt != nil {
		v.ReviewedAt = timezone.Format(*m.ReviewedAt, constant.DateFormat)
	}

	v.Metadata.FromModel(m.Metadata)
}

type GetVerificationsResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Pagination    gDto.Pagination        `json:"pagination"`
}

func (g *GetVerificationsResponse) FromModels(models []model.Verification, params gDto.QueryParams, total int) {
	g.Pagination = gDto.NewPagination(params, total)
	g.Verifications = make([]VerificationResponse, len(models))

	for i, m := range models {
		g.Verifications[i].FromModel(m)
	}
}

type StatusResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"request_id,omitempty"`
	Verified  bool   `json:"verified"`
}

type ResolveResponse struct {
	ID         string `json:"id"`
	LandlordID string `json:"landlord_id"`
	Status     string `json:"status"`
}
