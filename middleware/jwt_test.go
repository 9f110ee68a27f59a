package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"evrental/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userId := c.Locals("userId").(uint)
		return c.SendString(fmt.Sprintf("user:%d role:%v", userId, c.Locals("userRole")))
	})
	app.Get("/staff-only", JWTMiddleware, RequireRole("ADMIN", "STAFF"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-jwt-key"}
	app := newAuthTestApp()

	token, err := GenerateJWT(42, "Alice", "USER", "alice@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-jwt-key"}
	app := newAuthTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsGarbageToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-jwt-key"}
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsTokenSignedWithOtherKey(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "other-key"}
	token, err := GenerateJWT(42, "Alice", "USER", "alice@example.com")
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTKey: "test-jwt-key"}
	app := newAuthTestApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-jwt-key"}
	app := newAuthTestApp()

	cases := []struct {
		role string
		want int
	}{
		{"ADMIN", http.StatusOK},
		{"STAFF", http.StatusOK},
		{"USER", http.StatusForbidden},
	}

	for _, tc := range cases {
		token, err := GenerateJWT(1, "Test", tc.role, "test@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role %s", tc.role)
	}
}
