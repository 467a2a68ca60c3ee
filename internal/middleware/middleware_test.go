package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"foodgram-backend/domain"
	"foodgram-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	m := NewMiddleware()

	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		if IsStaff(c) {
			return c.SendString("staff")
		}
		return c.SendString(who(UserID(c)))
	}
	app.Get("/private", m.AuthMiddleware(jwtService), handler)
	app.Get("/public", m.OptionalAuth(jwtService), handler)
	return app, jwtService
}

func who(id uint) string {
	if id == 0 {
		return "anonymous"
	}
	return "user"
}

func call(t *testing.T, app *fiber.App, path, auth string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	app, jwtService := newTestApp(t)
	token, err := jwtService.GenerateTokenUser(7, domain.RoleUser)
	require.NoError(t, err)

	status, _ := call(t, app, "/private", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = call(t, app, "/private", "Token broken")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, body := call(t, app, "/private", "Token "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user", body)

	status, body = call(t, app, "/private", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user", body)

	admin, err := jwtService.GenerateTokenUser(1, domain.RoleAdmin)
	require.NoError(t, err)
	_, body = call(t, app, "/private", "Token "+admin)
	assert.Equal(t, "staff", body)
}

func TestOptionalAuth(t *testing.T) {
	app, jwtService := newTestApp(t)
	token, err := jwtService.GenerateTokenUser(7, domain.RoleUser)
	require.NoError(t, err)

	status, body := call(t, app, "/public", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "anonymous", body)

	status, body = call(t, app, "/public", "Token "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user", body)

	status, _ = call(t, app, "/public", "Basic abc")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Token abc", "abc", true},
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"abc", "", false},
		{"Basic abc", "", false},
		{"Token ", "", false},
	}
	for _, tt := range tests {
		token, ok := extractToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}
