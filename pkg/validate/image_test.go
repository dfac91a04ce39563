package validate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{name: "JPEG", contentType: "image/jpeg", expected: true},
		{name: "PNG", contentType: "image/png", expected: true},
		{name: "Uppercase", contentType: "IMAGE/PNG", expected: true},
		{name: "Padded", contentType: "  image/webp", expected: true},
		{name: "Text", contentType: "text/plain", expected: false},
		{name: "Empty", contentType: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsImage(tt.contentType))
		})
	}
}

func TestImageUpload(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		contentType string
		expected    bool
	}{
		{name: "Valid upload", data: []byte("image bytes"), contentType: "image/jpeg", expected: true},
		{name: "Empty payload", data: nil, contentType: "image/jpeg", expected: false},
		{name: "Oversized payload", data: bytes.Repeat([]byte{0x1}, int(MaxImageSize)+1), contentType: "image/jpeg", expected: false},
		{name: "Wrong content type", data: []byte("image bytes"), contentType: "application/pdf", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageUpload(tt.data, tt.contentType))
		})
	}
}
