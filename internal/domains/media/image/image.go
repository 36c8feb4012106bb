// Package image normalises uploaded pictures before they are stored.
package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

const jpegQuality = 85

var ErrUnsupported = errors.New("unsupported image format")

type Result struct {
	Body        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// Fit decodes body and, when it is wider than maxWidth, scales it down
// keeping the aspect ratio. A non-positive maxWidth disables scaling.
// Images already within bounds are returned byte for byte.
func Fit(body []byte, maxWidth int) (Result, error) {
	img, format, err := stdimage.Decode(bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	res := Result{Body: body}

	switch format {
	case "png":
		res.ContentType, res.Extension = "image/png", ".png"
	case "jpeg":
		res.ContentType, res.Extension = "image/jpeg", ".jpg"
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}

	bounds := img.Bounds()
	res.Width, res.Height = bounds.Dx(), bounds.Dy()

	if maxWidth <= 0 || res.Width <= maxWidth {
		return res, nil
	}

	scaled := resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)

	var buf bytes.Buffer

	if format == "png" {
		err = png.Encode(&buf, scaled)
	} else {
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality})
	}

	if err != nil {
		return Result{}, fmt.Errorf("failed to encode scaled image: %w", err)
	}

	res.Body = buf.Bytes()
	res.Width, res.Height = scaled.Bounds().Dx(), scaled.Bounds().Dy()

	return res, nil
}
