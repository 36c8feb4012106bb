package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrInvalidDataURI = errors.New("invalid base64 data uri")

// GetContentType returns the media type of a `data:<type>;base64,<payload>`
// URI, or "" when the URI is malformed.
func GetContentType(uri string) string {
	if !strings.HasPrefix(uri, dataPrefix) {
		return ""
	}

	end := strings.Index(uri, base64Marker)
	if end <= len(dataPrefix) {
		return ""
	}

	return uri[len(dataPrefix):end]
}

// Decode splits a data URI into its content type and decoded bytes.
func Decode(uri string) (string, []byte, error) {
	contentType := GetContentType(uri)
	if contentType == "" {
		return "", nil, ErrInvalidDataURI
	}

	payload := uri[strings.Index(uri, base64Marker)+len(base64Marker):]

	data, err := stdbase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURI, err)
	}

	return contentType, data, nil
}
