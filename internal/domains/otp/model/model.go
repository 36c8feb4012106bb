package model

import "time"

const (
	CachePrefix = "otp:"

	MessageSent     = "OTP sent"
	MessageVerified = "OTP verified"
	MessageInvalid  = "invalid or expired otp"
)

// Entry is what the store keeps per email.
type Entry struct {
	OTP       string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (e Entry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
