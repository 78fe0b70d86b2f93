// Package imageenc converts image bytes into MIME-tagged base64 data URLs.
package imageenc

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedFormat is returned when the bytes do not carry a recognized image signature.
var ErrUnsupportedFormat = errors.New("unsupported image format (only JPG/PNG/WEBP)")

// MIME types produced by SniffMIME.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWEBP = "image/webp"
)

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// SniffMIME classifies data by its leading magic bytes.
func SniffMIME(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return MIMEJPEG, nil
	case bytes.HasPrefix(data, pngMagic):
		return MIMEPNG, nil
	case len(data) >= 12 && bytes.HasPrefix(data, riffMagic) && bytes.Equal(data[8:12], webpMagic):
		return MIMEWEBP, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// EncodeDataURL returns data as a "data:<mime>;base64,<payload>" URL.
func EncodeDataURL(data []byte) (string, error) {
	mime, err := SniffMIME(data)
	if err != nil {
		return "", err
	}
	return dataURL(mime, data), nil
}

// EncodeFile reads a local image and returns it as a data URL. The three known signatures are
// tried first; anything else is accepted only when its detected content type is an image.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	if mime, err := SniffMIME(data); err == nil {
		return dataURL(mime, data), nil
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", fmt.Errorf("%w: %s is %s", ErrUnsupportedFormat, path, detected.String())
	}
	return dataURL(detected.String(), data), nil
}

// MIMEFormat returns the subtype of an image MIME type ("image/png" -> "png").
func MIMEFormat(mime string) string {
	return strings.TrimPrefix(mime, "image/")
}

func dataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
