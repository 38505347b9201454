package diagram

import (
	"encoding/base64"
	"mime"
	"net/http"
	"strings"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// MaxUploadBytes is the largest accepted diagram image.
const MaxUploadBytes = 10 << 20

const (
	pngMIME       = "image/png"
	pngDataPrefix = "data:image/png;base64,"
	svgDataPrefix = "data:image/svg+xml;base64,"
)

// ValidateUpload checks that data is a PNG of at most MaxUploadBytes, by both
// the declared content type and the sniffed bytes, and returns it as a data
// reference.
func ValidateUpload(contentType string, data []byte) (string, error) {
	declared, _, err := mime.ParseMediaType(contentType)
	if err != nil || declared != pngMIME {
		return "", domain.NewValidationError("diagram", "only PNG files are allowed")
	}
	if len(data) == 0 {
		return "", domain.NewValidationError("diagram", "file is empty")
	}
	if len(data) > MaxUploadBytes {
		return "", domain.NewValidationError("diagram", "file must be smaller than 10MB")
	}
	if http.DetectContentType(data) != pngMIME {
		return "", domain.NewValidationError("diagram", "file content is not a PNG image")
	}
	return pngDataPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// ParseReference validates a client-supplied diagram reference. PNG data
// references are decoded and re-validated; SVG data references must come
// from Render; https URLs must be one of the stock template images.
func ParseReference(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, pngDataPrefix):
		data, err := base64.StdEncoding.DecodeString(ref[len(pngDataPrefix):])
		if err != nil {
			return "", domain.NewValidationError("diagram", "malformed image data")
		}
		return ValidateUpload(pngMIME, data)
	case strings.HasPrefix(ref, svgDataPrefix):
		if !isRenderedSVG(ref) {
			return "", domain.NewValidationError("diagram", "unknown generated diagram")
		}
		return ref, nil
	case strings.HasPrefix(ref, "https://"):
		for _, t := range registry {
			if t.ImageURL != "" && t.ImageURL == ref {
				return ref, nil
			}
		}
		return "", domain.NewValidationError("diagram", "unsupported image URL")
	}
	return "", domain.NewValidationError("diagram", "unsupported diagram reference")
}

// isRenderedSVG reports whether ref is byte-for-byte a rendering of a
// registered template, so arbitrary SVG markup is never stored.
func isRenderedSVG(ref string) bool {
	for _, t := range registry {
		if r, err := Render(t); err == nil && r == ref {
			return true
		}
	}
	return false
}
