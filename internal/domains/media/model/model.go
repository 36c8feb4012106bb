package model

const (
	EntityName = "media"

	FolderListings      = "listings"
	FolderProfiles      = "profiles"
	FolderQR            = "qr"
	FolderVerifications = "verifications"

	MetaUploadPreset = "upload-preset"
	MetaUploadedBy   = "uploaded-by"

	MessageTimedOut = "upload timed out"
)

var Folders = []string{FolderListings, FolderProfiles, FolderQR, FolderVerifications}
