package dto

import (
	"mime/multipart"
)

type UploadRequest struct {
	File         *multipart.FileHeader `json:"file"          swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=10"`
	Content      []byte                `json:"-"`
	Folder       string                `json:"folder"        validate:"required,oneof=listings profiles qr verifications"`
	UploadPreset string                `json:"upload_preset" validate:"omitempty,max=64"`
}

// UploadBase64Request carries a data URI, e.g. a generated QR code.
type UploadBase64Request struct {
	Data   string `json:"data"   validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=14"`
	Folder string `json:"folder" validate:"required,oneof=listings profiles qr verifications"`
}

type UploadResponse struct {
	SecureURL string `json:"secure_url"`
	Key       string `json:"key"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}
