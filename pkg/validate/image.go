package validate

import "strings"

const MaxImageSize int64 = 10 * 1024 * 1024

// IsImage reports whether the declared content type names an image payload.
func IsImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

// ImageUpload checks an uploaded payload against the size ceiling and the
// image content-type requirement.
func ImageUpload(data []byte, contentType string) bool {
	if len(data) == 0 {
		return false
	}
	if int64(len(data)) > MaxImageSize {
		return false
	}
	return IsImage(contentType)
}
