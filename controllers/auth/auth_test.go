package authController

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"evrental/config"
	"evrental/database"
	"evrental/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newLoginTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-jwt-key", SaltRound: bcrypt.MinCost}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.RefreshToken{}, &models.OTP{}, &models.LoginTracking{},
	))
	database.Database = database.DbInstance{Db: db}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Mobile:   "0901234567",
		Password: string(hash),
		Role:     "USER",
	}).Error)

	app := fiber.New()
	app.Post("/api/auth/login", Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginByEmail(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"email":"alice@example.com","password":"secret-pass"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginByMobile(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"mobile":"0901234567","password":"secret-pass"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRequiresAnIdentifier(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"password":"secret-pass"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"mobile":"0901234567","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsUnknownMobile(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"mobile":"0000000000","password":"secret-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
