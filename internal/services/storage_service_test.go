// internal/services/storage_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{
			name:       "public endpoint layout",
			url:        "https://cdn.example.com/object/public/apfam/products/20260115_ab12cd34.jpg",
			wantBucket: "apfam",
			wantKey:    "products/20260115_ab12cd34.jpg",
		},
		{
			name:       "nested key",
			url:        "https://cdn.example.com/storage/v1/object/public/apfam/avatars/sub/dir/file.png",
			wantBucket: "apfam",
			wantKey:    "avatars/sub/dir/file.png",
		},
		{
			name:       "percent-encoded key",
			url:        "https://cdn.example.com/object/public/apfam/products/caf%C3%A9.jpg",
			wantBucket: "apfam",
			wantKey:    "products/café.jpg",
		},
		{
			name:       "virtual-hosted s3",
			url:        "https://apfam.s3.us-east-1.amazonaws.com/events/feira.jpg",
			wantBucket: "apfam",
			wantKey:    "events/feira.jpg",
		},
		{
			name:    "missing key after bucket",
			url:     "https://cdn.example.com/object/public/apfam",
			wantErr: true,
		},
		{
			name:    "unrelated url",
			url:     "https://example.com/images/foto.jpg",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := ParseObjectURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestIsValidImageType(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	webp := append([]byte("RIFF"), append(make([]byte, 4), []byte("WEBP")...)...)

	assert.True(t, isValidImageType(jpeg))
	assert.True(t, isValidImageType(png))
	assert.True(t, isValidImageType(webp))
	assert.False(t, isValidImageType([]byte("GIF89a")))
	assert.False(t, isValidImageType([]byte("%PDF-1.4")))
}

func TestStorageService_CleanupObjectWithoutClientDoesNotPanic(t *testing.T) {
	svc := &StorageService{}

	// All of these are swallowed, never returned.
	svc.CleanupObject("")
	svc.CleanupObject("not a url at all ://")
	svc.CleanupObject("https://cdn.example.com/object/public/apfam/products/foto.jpg")
}
