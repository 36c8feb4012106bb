package model

import "time"

const (
	EntityName = "like"

	FieldUserID    = "user_id"
	FieldListingID = "listing_id"
	FieldCreatedAt = "created_at"

	CachePrefix = "like:"
)

// Like is one document of the liked collection. The (user, listing) pair is
// unique.
type Like struct {
	UserID    string    `bson:"user_id"`
	ListingID string    `bson:"listing_id"`
	CreatedAt time.Time `bson:"created_at"`
}
