package base64_test

import (
	"dormy/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"png", "data:image/png;base64," + onePixelPNG, "image/png"},
		{"text", "data:text/plain;base64,SGVsbG8=", "text/plain"},
		{"parameters kept", "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", "image/svg+xml;charset=utf-8"},
		{"empty", "", ""},
		{"missing data prefix", "image/png;base64," + onePixelPNG, ""},
		{"missing base64 marker", "data:image/png," + onePixelPNG, ""},
		{"empty type", "data:;base64,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	contentType, data, err := base64.Decode("data:image/png;base64," + onePixelPNG)

	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("\x89PNG"), data[:4])

	_, _, err = base64.Decode("data:image/png;base64,@@@")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)

	_, _, err = base64.Decode("plain text")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
}
