package dto

type ToggleResponse struct {
	ListingID string `json:"listing_id"`
	Liked     bool   `json:"liked"`
}

type IDsResponse struct {
	ListingIDs []string `json:"listing_ids"`
}
