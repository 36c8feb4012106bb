package model

import (
	"dormy/shared/model"
	"time"
)

const (
	TableName  = "landlord_verifications"
	EntityName = "verification"

	FieldID         = "id"
	FieldLandlordID = "landlord_id"
	FieldStatus     = "status"
	FieldReviewedBy = "reviewed_by"
	FieldReviewedAt = "reviewed_at"
	FieldCreatedAt  = "created_at"

	CachePrefix = "verification:"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	// StatusNotSubmitted is never stored.
	StatusNotSubmitted = "not submitted"
)

// Blocking statuses stop a landlord from filing another request.
var Blocking = []string{StatusPending, StatusApproved}

type Verification struct {
	ID               string     `db:"id"`
	LandlordID       string     `db:"landlord_id"`
	FullName         string     `db:"full_name"`
	Phone            string     `db:"phone"`
	Address          string     `db:"address"`
	IDDocumentURL    string     `db:"id_document_url"`
	PaymentReference string     `db:"payment_reference"`
	Status           string     `db:"status"`
	ReviewedBy       *string    `db:"reviewed_by"`
	ReviewedAt       *time.Time `db:"reviewed_at"`
	model.Metadata
}
