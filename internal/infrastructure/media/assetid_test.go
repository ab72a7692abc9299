package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAssetID(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "delivery url with version segment",
			url:      "https://res.cloudinary.com/demo/image/upload/v1699999999/abcd1234.jpg",
			expected: "abcd1234",
		},
		{
			name:     "no extension",
			url:      "https://res.cloudinary.com/demo/image/upload/abcd1234",
			expected: "abcd1234",
		},
		{
			name:     "multiple dots truncate at the first",
			url:      "https://cdn.example.com/v1/photo.min.jpg",
			expected: "photo",
		},
		{
			name:     "bare segment",
			url:      "abcd1234.png",
			expected: "abcd1234",
		},
		{
			name:     "empty string",
			url:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractAssetID(tc.url))
		})
	}
}

func TestExtractAssetIDIdempotent(t *testing.T) {
	id := ExtractAssetID("https://cdn.example.com/v1/abcd1234.jpg")
	assert.Equal(t, id, ExtractAssetID(id))
}
