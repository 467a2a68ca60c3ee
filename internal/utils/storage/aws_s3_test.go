package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwsS3Links(t *testing.T) {
	t.Run("Virtual Hosted", func(t *testing.T) {
		s := &awsS3{bucket: "foodgram", region: "eu-central-1"}
		link := s.GetPublicLinkKey("recipe_images/a.png")
		assert.Equal(t, "https://foodgram.s3.eu-central-1.amazonaws.com/recipe_images/a.png", link)
		assert.Equal(t, "recipe_images/a.png", s.GetObjectKeyFromLink(link))
	})

	t.Run("Custom Endpoint", func(t *testing.T) {
		s := &awsS3{bucket: "foodgram", endpoint: "http://minio:9000"}
		link := s.GetPublicLinkKey("recipe_images/a.png")
		assert.Equal(t, "http://minio:9000/foodgram/recipe_images/a.png", link)
		assert.Equal(t, "recipe_images/a.png", s.GetObjectKeyFromLink(link))
	})

	t.Run("Garbage Link", func(t *testing.T) {
		s := &awsS3{bucket: "foodgram"}
		assert.Equal(t, "", s.GetObjectKeyFromLink(""))
	})

	t.Run("Content Type Check", func(t *testing.T) {
		s := &awsS3{bucket: "foodgram"}
		_, err := s.UploadFile("a.txt", []byte("x"), "text/plain", "recipe_images", AllowImage...)
		assert.ErrorIs(t, err, ErrContentTypeNotAllowed)
	})
}
