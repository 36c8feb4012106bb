// Package events carries the domain events published to Kafka and the
// worker-side handlers that turn them into notifications.
package events

import (
	"time"
)

const (
	TopicReservationCreated   = "reservation.created"
	TopicReservationApproved  = "reservation.approved"
	TopicReservationRejected  = "reservation.rejected"
	TopicVerificationResolved = "verification.resolved"
)

var Topics = []string{
	TopicReservationCreated,
	TopicReservationApproved,
	TopicReservationRejected,
	TopicVerificationResolved,
}

type Reservation struct {
	ReservationID string    `json:"reservation_id"`
	ListingID     string    `json:"listing_id"`
	ListingName   string    `json:"listing_name"`
	LandlordID    string    `json:"landlord_id"`
	TenantID      string    `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	TenantEmail   string    `json:"tenant_email"`
	ListingStatus string    `json:"listing_status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Verification struct {
	RequestID  string    `json:"request_id"`
	LandlordID string    `json:"landlord_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
