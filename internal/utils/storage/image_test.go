package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func TestDecodeBase64Image(t *testing.T) {
	t.Run("Data URI", func(t *testing.T) {
		img, err := DecodeBase64Image("data:image/png;base64,"+tinyPNG, AllowImage...)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
		assert.Equal(t, ".png", img.Extension)
		assert.NotEmpty(t, img.Data)
	})

	t.Run("Bare Payload", func(t *testing.T) {
		img, err := DecodeBase64Image(tinyPNG, AllowImage...)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.ContentType)
	})

	t.Run("Declared Type Is Not Trusted", func(t *testing.T) {
		text := base64.StdEncoding.EncodeToString([]byte("just some text"))
		_, err := DecodeBase64Image("data:image/png;base64,"+text, AllowImage...)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("Broken Base64", func(t *testing.T) {
		_, err := DecodeBase64Image("data:image/png;base64,!!!", AllowImage...)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("Missing Base64 Marker", func(t *testing.T) {
		_, err := DecodeBase64Image("data:image/png,"+tinyPNG, AllowImage...)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}
