package utils

import (
	"testing"

	"foodgram-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCustomTags(t *testing.T) {
	InitValidator()

	t.Run("Valid Register Request", func(t *testing.T) {
		req := domain.RegisterRequest{
			Email:     "chef@example.com",
			Username:  "chef",
			FirstName: "Gordon",
			LastName:  "Ramsay",
			Password:  "supersecret",
		}
		assert.NoError(t, Validate.Struct(req))
	})

	t.Run("Username Rule Reported By Json Name", func(t *testing.T) {
		req := domain.RegisterRequest{
			Email:     "chef@example.com",
			Username:  "c1",
			FirstName: "Gordon",
			LastName:  "Ramsay",
			Password:  "supersecret",
		}
		err := Validate.Struct(req)
		require.Error(t, err)
		assert.Equal(t, map[string]string{"username": "username"}, FormatValidationErrors(err))
	})

	t.Run("Params Are Kept", func(t *testing.T) {
		req := domain.SetPasswordRequest{CurrentPassword: "x", NewPassword: "short"}
		err := Validate.Struct(req)
		require.Error(t, err)
		assert.Equal(t, "min=8", FormatValidationErrors(err)["new_password"])
	})
}
