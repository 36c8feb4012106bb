package dto

import "strings"

type SendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *SendRequest) Normalize() {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

// SendResponse only carries the code when no mail transport is configured.
type SendResponse struct {
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required,numeric"`
}

func (v *VerifyRequest) Normalize() {
	v.Email = strings.ToLower(strings.TrimSpace(v.Email))
	v.OTP = strings.TrimSpace(v.OTP)
}
